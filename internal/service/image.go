package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/storage"
)

// presignExpiry is how long image download links stay valid.
const presignExpiry = 15 * time.Minute

// ImageWithURL is an image record together with a time-limited download URL.
type ImageWithURL struct {
	model.Image
	URL string `json:"url"`
}

// ImageListResult is the service-level DTO for paginated images.
type ImageListResult struct {
	Items []model.Image `json:"data"`
	Total int           `json:"total"`
}

// ImageService defines the use cases for animal image attachments.
type ImageService interface {
	// Upload streams the content to object storage, saves metadata to the
	// DB, and rolls back storage if the DB save fails.
	// originalFilename is used only to extract the extension; the stored
	// filename is UUID + original extension.
	Upload(ctx context.Context, animalID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Image, error)

	// Get returns the image metadata plus a presigned download URL.
	Get(ctx context.Context, id string) (*ImageWithURL, error)

	// ListByAnimal returns an animal's images.
	ListByAnimal(ctx context.Context, animalID string, limit, offset int) (*ImageListResult, error)

	// Delete removes an image from both storage and the repository.
	Delete(ctx context.Context, id string) error
}

type imageService struct {
	store   storage.Storage
	repo    repository.ImageRepository
	animals repository.AnimalRepository
	now     func() time.Time
}

// NewImageService constructs a new ImageService.
func NewImageService(store storage.Storage, repo repository.ImageRepository, animals repository.AnimalRepository) ImageService {
	return &imageService{store: store, repo: repo, animals: animals, now: time.Now}
}

func (s *imageService) Upload(ctx context.Context, animalID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if animalID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.animals.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Generate filename using UUID + extension
	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("animals", genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"animal-id":         animalID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	img := &model.Image{
		ID:          uuid.New().String(),
		AnimalID:    animalID,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   s.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, img)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *imageService) Get(ctx context.Context, id string) (*ImageWithURL, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	url, err := s.store.PresignGet(ctx, img.StoragePath, presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign url: %w", err)
	}
	return &ImageWithURL{Image: *img, URL: url}, nil
}

func (s *imageService) ListByAnimal(ctx context.Context, animalID string, limit, offset int) (*ImageListResult, error) {
	if animalID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.ListByAnimal(ctx, animalID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ImageListResult{Items: res.Items, Total: res.Total}, nil
}

// Delete removes an image from storage, then deletes its record.
func (s *imageService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep DB row to avoid orphaned storage reference loss
	if err := s.store.Delete(ctx, img.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
