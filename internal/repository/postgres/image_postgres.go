package postgres

import (
	"context"
	"database/sql"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// ImagePostgres is a PostgreSQL implementation of repository.ImageRepository.
type ImagePostgres struct {
	db *sql.DB
}

// NewImagePostgres creates a new ImagePostgres repository.
func NewImagePostgres(db *sql.DB) *ImagePostgres {
	return &ImagePostgres{db: db}
}

var _ repository.ImageRepository = (*ImagePostgres)(nil)

const imageColumns = `id, animal_id, filename, storage_path, size, content_type, created_at`

func scanImage(row interface{ Scan(...any) error }) (*model.Image, error) {
	var img model.Image
	if err := row.Scan(
		&img.ID,
		&img.AnimalID,
		&img.Filename,
		&img.StoragePath,
		&img.Size,
		&img.ContentType,
		&img.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImagePostgres) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	q := `
		INSERT INTO images (id, animal_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + imageColumns
	row := r.db.QueryRowContext(ctx, q,
		img.ID, img.AnimalID, img.Filename, img.StoragePath, img.Size, img.ContentType, img.CreatedAt,
	)
	return scanImage(row)
}

func (r *ImagePostgres) FindByID(ctx context.Context, id string) (*model.Image, error) {
	q := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	return scanImage(r.db.QueryRowContext(ctx, q, id))
}

func (r *ImagePostgres) ListByAnimal(ctx context.Context, animalID string, pq repository.PageQuery) (*repository.PageResult[model.Image], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images WHERE animal_id = $1`, animalID).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + imageColumns + ` FROM images WHERE animal_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, q, animalID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Image]{Items: items, Total: total}, nil
}

// Delete removes an image row by ID. It does not return an error if the row does not exist.
func (r *ImagePostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
