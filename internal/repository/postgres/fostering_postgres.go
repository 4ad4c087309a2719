package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// FosteringPostgres is a PostgreSQL implementation of repository.FosteringRepository.
type FosteringPostgres struct {
	db *sql.DB
}

// NewFosteringPostgres creates a new FosteringPostgres repository.
func NewFosteringPostgres(db *sql.DB) *FosteringPostgres {
	return &FosteringPostgres{db: db}
}

var _ repository.FosteringRepository = (*FosteringPostgres)(nil)

const fosteringColumns = `id, animal_id, user_id, status, started_at, ended_at`

func scanFostering(row interface{ Scan(...any) error }) (*model.Fostering, error) {
	var f model.Fostering
	if err := row.Scan(
		&f.ID,
		&f.AnimalID,
		&f.UserID,
		&f.Status,
		&f.StartedAt,
		&f.EndedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FosteringPostgres) Create(ctx context.Context, f *model.Fostering) (*model.Fostering, error) {
	q := `
		INSERT INTO fosterings (id, animal_id, user_id, status, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fosteringColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID, f.AnimalID, f.UserID, f.Status, f.StartedAt, f.EndedAt,
	)
	return scanFostering(row)
}

func (r *FosteringPostgres) FindByID(ctx context.Context, id string) (*model.Fostering, error) {
	q := `SELECT ` + fosteringColumns + ` FROM fosterings WHERE id = $1`
	return scanFostering(r.db.QueryRowContext(ctx, q, id))
}

func (r *FosteringPostgres) List(ctx context.Context, f repository.FosteringFilter, pq repository.PageQuery) (*repository.PageResult[model.Fostering], error) {
	var conds []string
	var args []any
	add := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("animal_id", f.AnimalID)
	add("user_id", f.UserID)
	add("status", f.Status)
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fosterings`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM fosterings%s ORDER BY started_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		fosteringColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Fostering, 0)
	for rows.Next() {
		item, err := scanFostering(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Fostering]{Items: items, Total: total}, nil
}

// FindActive returns the user's active fostering for the animal, or sql.ErrNoRows.
func (r *FosteringPostgres) FindActive(ctx context.Context, animalID, userID string) (*model.Fostering, error) {
	q := `SELECT ` + fosteringColumns + ` FROM fosterings WHERE animal_id = $1 AND user_id = $2 AND status = 'active'`
	return scanFostering(r.db.QueryRowContext(ctx, q, animalID, userID))
}

// End marks the fostering ended at the given time.
func (r *FosteringPostgres) End(ctx context.Context, id string, endedAt time.Time) error {
	const q = `UPDATE fosterings SET status = 'ended', ended_at = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, endedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
