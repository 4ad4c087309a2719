package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shelterapi/internal/cache"
	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

const animalListCachePrefix = "animals:list:"

// AnimalInput carries the writable fields of an animal.
type AnimalInput struct {
	Name        string        `json:"name"`
	Species     model.Species `json:"species"`
	BreedID     string        `json:"breed_id"`
	ShelterID   string        `json:"shelter_id"`
	AgeMonths   int           `json:"age_months"`
	Sex         model.Sex     `json:"sex"`
	Description string        `json:"description"`
}

// AnimalListResult is the service-level DTO for paginated animals.
type AnimalListResult struct {
	Items []model.Animal `json:"data"`
	Total int            `json:"total"`
}

// AnimalService defines the use cases for managing animals.
type AnimalService interface {
	// Create registers a new animal in the available state.
	Create(ctx context.Context, in AnimalInput) (*model.Animal, error)

	// Get returns a single animal by its ID.
	Get(ctx context.Context, id string) (*model.Animal, error)

	// List returns animals for the filter using limit/offset and a total
	// count. Results are served from the cache when possible.
	List(ctx context.Context, f repository.AnimalFilter, limit, offset int) (*AnimalListResult, error)

	// Update overwrites the animal's descriptive fields. Lifecycle state
	// is never changed here; it moves through the ownership and
	// fostering workflows.
	Update(ctx context.Context, id string, in AnimalInput) (*model.Animal, error)

	// Delete removes an animal by ID.
	Delete(ctx context.Context, id string) error
}

type animalService struct {
	repo     repository.AnimalRepository
	breeds   repository.BreedRepository
	shelters repository.ShelterRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewAnimalService constructs a new AnimalService.
func NewAnimalService(
	repo repository.AnimalRepository,
	breeds repository.BreedRepository,
	shelters repository.ShelterRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) AnimalService {
	return &animalService{
		repo:     repo,
		breeds:   breeds,
		shelters: shelters,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *animalService) validateInput(ctx context.Context, in AnimalInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if !in.Species.Valid() || !in.Sex.Valid() {
		return ErrInvalidInput
	}
	if in.AgeMonths < 0 {
		return ErrInvalidInput
	}
	// Referenced rows must exist; a dangling reference is caller error, not 500.
	if _, err := s.breeds.FindByID(ctx, in.BreedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidInput
		}
		return err
	}
	if _, err := s.shelters.FindByID(ctx, in.ShelterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidInput
		}
		return err
	}
	return nil
}

func (s *animalService) Create(ctx context.Context, in AnimalInput) (*model.Animal, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &model.Animal{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Species:     in.Species,
		BreedID:     in.BreedID,
		ShelterID:   in.ShelterID,
		AgeMonths:   in.AgeMonths,
		Sex:         in.Sex,
		Description: in.Description,
		State:       model.AnimalAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	return stored, nil
}

func (s *animalService) Get(ctx context.Context, id string) (*model.Animal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *animalService) List(ctx context.Context, f repository.AnimalFilter, limit, offset int) (*AnimalListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	key := fmt.Sprintf("%s%s|%s|%s|%s|%d|%d",
		animalListCachePrefix, f.Species, f.State, f.ShelterID, f.BreedID, limit, offset)

	var cached AnimalListResult
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	res, err := s.repo.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &AnimalListResult{Items: res.Items, Total: res.Total}
	_ = s.cache.SetJSON(ctx, key, out, s.cacheTTL)
	return out, nil
}

func (s *animalService) Update(ctx context.Context, id string, in AnimalInput) (*model.Animal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Species = in.Species
	current.BreedID = in.BreedID
	current.ShelterID = in.ShelterID
	current.AgeMonths = in.AgeMonths
	current.Sex = in.Sex
	current.Description = in.Description
	current.UpdatedAt = s.now().UTC()

	stored, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	return stored, nil
}

func (s *animalService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	return nil
}
