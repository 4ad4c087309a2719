package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// OwnershipRequestPostgres is a PostgreSQL implementation of
// repository.OwnershipRequestRepository.
type OwnershipRequestPostgres struct {
	db *sql.DB
}

// NewOwnershipRequestPostgres creates a new OwnershipRequestPostgres repository.
func NewOwnershipRequestPostgres(db *sql.DB) *OwnershipRequestPostgres {
	return &OwnershipRequestPostgres{db: db}
}

var _ repository.OwnershipRequestRepository = (*OwnershipRequestPostgres)(nil)

const requestColumns = `id, animal_id, user_id, status, message, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*model.OwnershipRequest, error) {
	var o model.OwnershipRequest
	if err := row.Scan(
		&o.ID,
		&o.AnimalID,
		&o.UserID,
		&o.Status,
		&o.Message,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnershipRequestPostgres) Create(ctx context.Context, o *model.OwnershipRequest) (*model.OwnershipRequest, error) {
	q := `
		INSERT INTO ownership_requests (id, animal_id, user_id, status, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + requestColumns
	row := r.db.QueryRowContext(ctx, q,
		o.ID, o.AnimalID, o.UserID, o.Status, o.Message, o.CreatedAt, o.UpdatedAt,
	)
	return scanRequest(row)
}

func (r *OwnershipRequestPostgres) FindByID(ctx context.Context, id string) (*model.OwnershipRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM ownership_requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, q, id))
}

func (r *OwnershipRequestPostgres) List(ctx context.Context, f repository.OwnershipRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.OwnershipRequest], error) {
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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ownership_requests`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM ownership_requests%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		requestColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OwnershipRequest, 0)
	for rows.Next() {
		o, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.OwnershipRequest]{Items: items, Total: total}, nil
}

func (r *OwnershipRequestPostgres) UpdateStatus(ctx context.Context, id string, status model.OwnershipStatus) error {
	const q = `UPDATE ownership_requests SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
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

// HasOpen reports whether the user already has a non-rejected request for the animal.
func (r *OwnershipRequestPostgres) HasOpen(ctx context.Context, animalID, userID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM ownership_requests
			WHERE animal_id = $1 AND user_id = $2 AND status <> 'rejected'
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, animalID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// HasApproved reports whether the user holds an approved request for the animal.
func (r *OwnershipRequestPostgres) HasApproved(ctx context.Context, animalID, userID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM ownership_requests
			WHERE animal_id = $1 AND user_id = $2 AND status = 'approved'
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, animalID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Approve runs the approval transaction: the request becomes approved,
// every other pending/analysing request for the animal is rejected, and
// the animal row moves to has_owner with the requester as owner.
func (r *OwnershipRequestPostgres) Approve(ctx context.Context, id, animalID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE ownership_requests SET status = 'approved', updated_at = now() WHERE id = $1`,
		id,
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
		`UPDATE ownership_requests SET status = 'rejected', updated_at = now()
		 WHERE animal_id = $1 AND id <> $2 AND status IN ('pending', 'analysing')`,
		animalID, id,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE animals SET state = 'has_owner', owner_id = $2, updated_at = now() WHERE id = $1`,
		animalID, userID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
