package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// BreedInput carries the writable fields of a breed.
type BreedInput struct {
	Name        string        `json:"name"`
	Species     model.Species `json:"species"`
	Description string        `json:"description"`
}

// BreedListResult is the service-level DTO for paginated breeds.
type BreedListResult struct {
	Items []model.Breed `json:"data"`
	Total int           `json:"total"`
}

// BreedService defines the use cases for the breed catalogue.
type BreedService interface {
	Create(ctx context.Context, in BreedInput) (*model.Breed, error)
	Get(ctx context.Context, id string) (*model.Breed, error)
	List(ctx context.Context, species string, limit, offset int) (*BreedListResult, error)
	Update(ctx context.Context, id string, in BreedInput) (*model.Breed, error)
	Delete(ctx context.Context, id string) error
}

type breedService struct {
	repo repository.BreedRepository
}

// NewBreedService constructs a new BreedService.
func NewBreedService(repo repository.BreedRepository) BreedService {
	return &breedService{repo: repo}
}

func (s *breedService) Create(ctx context.Context, in BreedInput) (*model.Breed, error) {
	if strings.TrimSpace(in.Name) == "" || !in.Species.Valid() {
		return nil, ErrInvalidInput
	}
	b := &model.Breed{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Species:     in.Species,
		Description: in.Description,
	}
	return s.repo.Create(ctx, b)
}

func (s *breedService) Get(ctx context.Context, id string) (*model.Breed, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *breedService) List(ctx context.Context, species string, limit, offset int) (*BreedListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, species, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &BreedListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *breedService) Update(ctx context.Context, id string, in BreedInput) (*model.Breed, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(in.Name) == "" || !in.Species.Valid() {
		return nil, ErrInvalidInput
	}
	b := &model.Breed{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Species:     in.Species,
		Description: in.Description,
	}
	stored, err := s.repo.Update(ctx, b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

func (s *breedService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

// UserInput carries the writable fields of a platform account.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserService defines the minimal account use cases the platform needs.
type UserService interface {
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, now: time.Now}
}

func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	if strings.TrimSpace(in.Name) == "" || !strings.Contains(in.Email, "@") {
		return nil, ErrInvalidInput
	}
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     in.Phone,
		CreatedAt: s.now().UTC(),
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
