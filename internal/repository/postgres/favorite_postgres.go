package postgres

import (
	"context"
	"database/sql"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// FavoritePostgres is a PostgreSQL implementation of repository.FavoriteRepository.
type FavoritePostgres struct {
	db *sql.DB
}

// NewFavoritePostgres creates a new FavoritePostgres repository.
func NewFavoritePostgres(db *sql.DB) *FavoritePostgres {
	return &FavoritePostgres{db: db}
}

var _ repository.FavoriteRepository = (*FavoritePostgres)(nil)

// Add inserts the pair; adding an existing favorite is a no-op.
func (r *FavoritePostgres) Add(ctx context.Context, f *model.Favorite) error {
	const q = `
		INSERT INTO favorites (user_id, animal_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, animal_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, f.UserID, f.AnimalID, f.CreatedAt)
	return err
}

// Remove deletes the pair; removing a missing favorite is a no-op.
func (r *FavoritePostgres) Remove(ctx context.Context, userID, animalID string) error {
	const q = `DELETE FROM favorites WHERE user_id = $1 AND animal_id = $2`
	_, err := r.db.ExecContext(ctx, q, userID, animalID)
	return err
}

// ListByUser returns the user's favorited animals, most recently added first.
func (r *FavoritePostgres) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Animal], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + animalColumnsAliased("a") + `
		FROM favorites f
		JOIN animals a ON a.id = f.animal_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, q, userID, pq.Limit, pq.Offset)
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

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, created_at
	`
	row := r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.Phone, u.CreatedAt)
	var out model.User
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT id, name, email, phone, created_at FROM users WHERE id = $1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
