package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// FavoriteService defines the favorites use cases. Add and Remove are
// idempotent.
type FavoriteService interface {
	Add(ctx context.Context, actorID, animalID string) error
	Remove(ctx context.Context, actorID, animalID string) error

	// ListByUser returns the user's favorited animals.
	ListByUser(ctx context.Context, userID string, limit, offset int) (*AnimalListResult, error)
}

type favoriteService struct {
	repo    repository.FavoriteRepository
	animals repository.AnimalRepository
	now     func() time.Time
}

// NewFavoriteService constructs a new FavoriteService.
func NewFavoriteService(repo repository.FavoriteRepository, animals repository.AnimalRepository) FavoriteService {
	return &favoriteService{repo: repo, animals: animals, now: time.Now}
}

func (s *favoriteService) Add(ctx context.Context, actorID, animalID string) error {
	if actorID == "" {
		return ErrActorRequired
	}
	if animalID == "" {
		return ErrIDRequired
	}
	if _, err := s.animals.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Add(ctx, &model.Favorite{
		UserID:    actorID,
		AnimalID:  animalID,
		CreatedAt: s.now().UTC(),
	})
}

func (s *favoriteService) Remove(ctx context.Context, actorID, animalID string) error {
	if actorID == "" {
		return ErrActorRequired
	}
	if animalID == "" {
		return ErrIDRequired
	}
	return s.repo.Remove(ctx, actorID, animalID)
}

func (s *favoriteService) ListByUser(ctx context.Context, userID string, limit, offset int) (*AnimalListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.ListByUser(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AnimalListResult{Items: res.Items, Total: res.Total}, nil
}
