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

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
// Slot rows move in lockstep with activities, so mutations run in transactions.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

const activityColumns = `id, animal_id, user_id, slot_id, kind, status, created_at, updated_at`

func scanActivity(row interface{ Scan(...any) error }) (*model.Activity, error) {
	var a model.Activity
	if err := row.Scan(
		&a.ID,
		&a.AnimalID,
		&a.UserID,
		&a.SlotID,
		&a.Kind,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateReservingSlot inserts the activity and reserves its slot atomically.
// The conditional slot update guards against double booking: if the slot is
// no longer available, no row is updated and the transaction rolls back
// with sql.ErrNoRows.
func (r *ActivityPostgres) CreateReservingSlot(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE activity_slots SET status = $2 WHERE id = $1 AND status = $3`,
		a.SlotID, model.SlotReserved, model.SlotAvailable,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, sql.ErrNoRows
	}

	q := `
		INSERT INTO activities (id, animal_id, user_id, slot_id, kind, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + activityColumns
	row := tx.QueryRowContext(ctx, q,
		a.ID, a.AnimalID, a.UserID, a.SlotID, a.Kind, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	out, err := scanActivity(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single activity by its ID.
func (r *ActivityPostgres) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	q := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	return scanActivity(r.db.QueryRowContext(ctx, q, id))
}

// List returns activities using LIMIT/OFFSET pagination and a total count.
func (r *ActivityPostgres) List(ctx context.Context, f repository.ActivityFilter, pq repository.PageQuery) (*repository.PageResult[model.Activity], error) {
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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM activities%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		activityColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Activity]{Items: items, Total: total}, nil
}

// UpdateStatus sets the activity status and its slot status in one transaction.
func (r *ActivityPostgres) UpdateStatus(ctx context.Context, id string, status model.ActivityStatus, slotStatus model.SlotStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE activities SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
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

	_, err = tx.ExecContext(ctx,
		`UPDATE activity_slots SET status = $2 WHERE id = (SELECT slot_id FROM activities WHERE id = $1)`,
		id, slotStatus,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LastCompletedEnd returns the slot end of the animal's most recently
// completed activity, or nil when there is none.
func (r *ActivityPostgres) LastCompletedEnd(ctx context.Context, animalID string) (*time.Time, error) {
	const q = `
		SELECT s.ends_at
		FROM activities a
		JOIN activity_slots s ON s.id = a.slot_id
		WHERE a.animal_id = $1 AND a.status = 'completed'
		ORDER BY s.ends_at DESC
		LIMIT 1
	`
	var end time.Time
	err := r.db.QueryRowContext(ctx, q, animalID).Scan(&end)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &end, nil
}
