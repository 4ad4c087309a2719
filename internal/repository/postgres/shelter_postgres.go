package postgres

import (
	"context"
	"database/sql"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// ShelterPostgres is a PostgreSQL implementation of repository.ShelterRepository.
type ShelterPostgres struct {
	db *sql.DB
}

// NewShelterPostgres creates a new ShelterPostgres repository.
func NewShelterPostgres(db *sql.DB) *ShelterPostgres {
	return &ShelterPostgres{db: db}
}

var _ repository.ShelterRepository = (*ShelterPostgres)(nil)

const shelterColumns = `id, name, city, address, phone, admin_id, opens_at, closes_at, created_at`

func scanShelter(row interface{ Scan(...any) error }) (*model.Shelter, error) {
	var s model.Shelter
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.City,
		&s.Address,
		&s.Phone,
		&s.AdminID,
		&s.OpensAt,
		&s.ClosesAt,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShelterPostgres) Create(ctx context.Context, s *model.Shelter) (*model.Shelter, error) {
	q := `
		INSERT INTO shelters (id, name, city, address, phone, admin_id, opens_at, closes_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + shelterColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID, s.Name, s.City, s.Address, s.Phone, s.AdminID, s.OpensAt, s.ClosesAt, s.CreatedAt,
	)
	return scanShelter(row)
}

func (r *ShelterPostgres) FindByID(ctx context.Context, id string) (*model.Shelter, error) {
	q := `SELECT ` + shelterColumns + ` FROM shelters WHERE id = $1`
	return scanShelter(r.db.QueryRowContext(ctx, q, id))
}

func (r *ShelterPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Shelter], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shelters`).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + shelterColumns + ` FROM shelters ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Shelter, 0)
	for rows.Next() {
		s, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Shelter]{Items: items, Total: total}, nil
}

func (r *ShelterPostgres) Update(ctx context.Context, s *model.Shelter) (*model.Shelter, error) {
	q := `
		UPDATE shelters
		SET name = $2, city = $3, address = $4, phone = $5, admin_id = $6, opens_at = $7, closes_at = $8
		WHERE id = $1
		RETURNING ` + shelterColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID, s.Name, s.City, s.Address, s.Phone, s.AdminID, s.OpensAt, s.ClosesAt,
	)
	return scanShelter(row)
}

// SlotPostgres is a PostgreSQL implementation of repository.SlotRepository.
type SlotPostgres struct {
	db *sql.DB
}

// NewSlotPostgres creates a new SlotPostgres repository.
func NewSlotPostgres(db *sql.DB) *SlotPostgres {
	return &SlotPostgres{db: db}
}

var _ repository.SlotRepository = (*SlotPostgres)(nil)

const slotColumns = `id, shelter_id, starts_at, ends_at, status`

func scanSlot(row interface{ Scan(...any) error }) (*model.ActivitySlot, error) {
	var s model.ActivitySlot
	if err := row.Scan(&s.ID, &s.ShelterID, &s.StartsAt, &s.EndsAt, &s.Status); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotPostgres) Create(ctx context.Context, s *model.ActivitySlot) (*model.ActivitySlot, error) {
	q := `
		INSERT INTO activity_slots (id, shelter_id, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + slotColumns
	row := r.db.QueryRowContext(ctx, q, s.ID, s.ShelterID, s.StartsAt, s.EndsAt, s.Status)
	return scanSlot(row)
}

func (r *SlotPostgres) FindByID(ctx context.Context, id string) (*model.ActivitySlot, error) {
	q := `SELECT ` + slotColumns + ` FROM activity_slots WHERE id = $1`
	return scanSlot(r.db.QueryRowContext(ctx, q, id))
}

// ListByShelter returns a shelter's slots, optionally filtered by status.
func (r *SlotPostgres) ListByShelter(ctx context.Context, shelterID, status string, pq repository.PageQuery) (*repository.PageResult[model.ActivitySlot], error) {
	where := ` WHERE shelter_id = $1`
	args := []any{shelterID}
	if status != "" {
		where += ` AND status = $2`
		args = append(args, status)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_slots`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + slotColumns + ` FROM activity_slots` + where + ` ORDER BY starts_at`
	if status != "" {
		q += ` LIMIT $3 OFFSET $4`
	} else {
		q += ` LIMIT $2 OFFSET $3`
	}
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ActivitySlot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ActivitySlot]{Items: items, Total: total}, nil
}
