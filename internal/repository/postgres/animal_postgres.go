package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// AnimalPostgres is a PostgreSQL implementation of repository.AnimalRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AnimalPostgres struct {
	db *sql.DB
}

// NewAnimalPostgres creates a new AnimalPostgres repository.
func NewAnimalPostgres(db *sql.DB) *AnimalPostgres {
	return &AnimalPostgres{db: db}
}

var _ repository.AnimalRepository = (*AnimalPostgres)(nil)

const animalColumns = `id, name, species, breed_id, shelter_id, age_months, sex, description, state, owner_id, created_at, updated_at`

// animalColumnsAliased qualifies the animal columns with a table alias for joins.
func animalColumnsAliased(alias string) string {
	cols := strings.Split(animalColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanAnimal(row interface{ Scan(...any) error }) (*model.Animal, error) {
	var a model.Animal
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.BreedID,
		&a.ShelterID,
		&a.AgeMonths,
		&a.Sex,
		&a.Description,
		&a.State,
		&a.OwnerID,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new animal row and returns the stored record.
func (r *AnimalPostgres) Create(ctx context.Context, a *model.Animal) (*model.Animal, error) {
	q := `
		INSERT INTO animals (id, name, species, breed_id, shelter_id, age_months, sex, description, state, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + animalColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.Species,
		a.BreedID,
		a.ShelterID,
		a.AgeMonths,
		a.Sex,
		a.Description,
		a.State,
		a.OwnerID,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return scanAnimal(row)
}

// FindByID fetches a single animal by its ID.
func (r *AnimalPostgres) FindByID(ctx context.Context, id string) (*model.Animal, error) {
	q := `SELECT ` + animalColumns + ` FROM animals WHERE id = $1`
	return scanAnimal(r.db.QueryRowContext(ctx, q, id))
}

// animalWhere builds the WHERE clause and args for the given filter.
func animalWhere(f repository.AnimalFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("species", f.Species)
	add("state", f.State)
	add("shelter_id", f.ShelterID)
	add("breed_id", f.BreedID)
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns animals using LIMIT/OFFSET pagination and a total count.
func (r *AnimalPostgres) List(ctx context.Context, f repository.AnimalFilter, pq repository.PageQuery) (*repository.PageResult[model.Animal], error) {
	where, args := animalWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM animals%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		animalColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Animal]{Items: items, Total: total}, nil
}

// Update overwrites the mutable columns and returns the stored record.
func (r *AnimalPostgres) Update(ctx context.Context, a *model.Animal) (*model.Animal, error) {
	q := `
		UPDATE animals
		SET name = $2, species = $3, breed_id = $4, shelter_id = $5, age_months = $6,
		    sex = $7, description = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + animalColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.Species,
		a.BreedID,
		a.ShelterID,
		a.AgeMonths,
		a.Sex,
		a.Description,
		a.UpdatedAt,
	)
	return scanAnimal(row)
}

// UpdateState changes state and owner reference in one statement.
func (r *AnimalPostgres) UpdateState(ctx context.Context, id string, state model.AnimalState, ownerID *string) error {
	const q = `UPDATE animals SET state = $2, owner_id = $3, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, state, ownerID)
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

// Delete removes an animal by ID. It does not return an error if the row does not exist.
func (r *AnimalPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM animals WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
