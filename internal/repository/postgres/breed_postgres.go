package postgres

import (
	"context"
	"database/sql"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// BreedPostgres is a PostgreSQL implementation of repository.BreedRepository.
type BreedPostgres struct {
	db *sql.DB
}

// NewBreedPostgres creates a new BreedPostgres repository.
func NewBreedPostgres(db *sql.DB) *BreedPostgres {
	return &BreedPostgres{db: db}
}

var _ repository.BreedRepository = (*BreedPostgres)(nil)

func (r *BreedPostgres) Create(ctx context.Context, b *model.Breed) (*model.Breed, error) {
	const q = `
		INSERT INTO breeds (id, name, species, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, species, description
	`
	row := r.db.QueryRowContext(ctx, q, b.ID, b.Name, b.Species, b.Description)
	var out model.Breed
	if err := row.Scan(&out.ID, &out.Name, &out.Species, &out.Description); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *BreedPostgres) FindByID(ctx context.Context, id string) (*model.Breed, error) {
	const q = `SELECT id, name, species, description FROM breeds WHERE id = $1`
	var b model.Breed
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Species, &b.Description); err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns breeds, optionally filtered by species.
func (r *BreedPostgres) List(ctx context.Context, species string, pq repository.PageQuery) (*repository.PageResult[model.Breed], error) {
	where := ""
	args := []any{}
	if species != "" {
		where = " WHERE species = $1"
		args = append(args, species)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breeds`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT id, name, species, description FROM breeds` + where + ` ORDER BY name`
	if species != "" {
		q += ` LIMIT $2 OFFSET $3`
	} else {
		q += ` LIMIT $1 OFFSET $2`
	}
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Breed, 0)
	for rows.Next() {
		var b model.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.Species, &b.Description); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Breed]{Items: items, Total: total}, nil
}

func (r *BreedPostgres) Update(ctx context.Context, b *model.Breed) (*model.Breed, error) {
	const q = `
		UPDATE breeds SET name = $2, species = $3, description = $4
		WHERE id = $1
		RETURNING id, name, species, description
	`
	row := r.db.QueryRowContext(ctx, q, b.ID, b.Name, b.Species, b.Description)
	var out model.Breed
	if err := row.Scan(&out.ID, &out.Name, &out.Species, &out.Description); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a breed by ID. It does not return an error if the row does not exist.
func (r *BreedPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
