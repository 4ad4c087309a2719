package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"shelterapi/internal/cache"
	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// FosteringListResult is the service-level DTO for paginated fosterings.
type FosteringListResult struct {
	Items []model.Fostering `json:"data"`
	Total int               `json:"total"`
}

// FosteringService defines the foster-care use cases.
type FosteringService interface {
	// Create starts fostering an available animal by the acting user and
	// moves the animal into the fostered state.
	Create(ctx context.Context, actorID, animalID string) (*model.Fostering, error)

	// End closes an active fostering. The foster carer or the shelter
	// admin may end it; the animal returns to available.
	End(ctx context.Context, actorID, id string) (*model.Fostering, error)

	// List returns fosterings for the filter.
	List(ctx context.Context, f repository.FosteringFilter, limit, offset int) (*FosteringListResult, error)
}

type fosteringService struct {
	repo     repository.FosteringRepository
	animals  repository.AnimalRepository
	shelters repository.ShelterRepository
	cache    cache.Cache
	now      func() time.Time
}

// NewFosteringService constructs a new FosteringService.
func NewFosteringService(
	repo repository.FosteringRepository,
	animals repository.AnimalRepository,
	shelters repository.ShelterRepository,
	c cache.Cache,
) FosteringService {
	return &fosteringService{
		repo:     repo,
		animals:  animals,
		shelters: shelters,
		cache:    c,
		now:      time.Now,
	}
}

func (s *fosteringService) Create(ctx context.Context, actorID, animalID string) (*model.Fostering, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if animalID == "" {
		return nil, ErrIDRequired
	}

	animal, err := s.animals.FindByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if animal.State != model.AnimalAvailable {
		return nil, ErrAnimalUnavailable
	}

	f := &model.Fostering{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		UserID:    actorID,
		Status:    model.FosteringActive,
		StartedAt: s.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := s.animals.UpdateState(ctx, animalID, model.AnimalFostered, nil); err != nil {
		return nil, err
	}
	_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	return stored, nil
}

func (s *fosteringService) End(ctx context.Context, actorID, id string) (*model.Fostering, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if f.Status != model.FosteringActive {
		return nil, ErrFosteringNotActive
	}

	if f.UserID != actorID {
		// Not the carer; only the shelter admin may end it on their behalf.
		animal, err := s.animals.FindByID(ctx, f.AnimalID)
		if err != nil {
			return nil, err
		}
		shelter, err := s.shelters.FindByID(ctx, animal.ShelterID)
		if err != nil {
			return nil, err
		}
		if shelter.AdminID != actorID {
			return nil, ErrForbidden
		}
	}

	endedAt := s.now().UTC()
	if err := s.repo.End(ctx, f.ID, endedAt); err != nil {
		return nil, err
	}
	if err := s.animals.UpdateState(ctx, f.AnimalID, model.AnimalAvailable, nil); err != nil {
		return nil, err
	}
	_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)

	f.Status = model.FosteringEnded
	f.EndedAt = &endedAt
	return f, nil
}

func (s *fosteringService) List(ctx context.Context, f repository.FosteringFilter, limit, offset int) (*FosteringListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &FosteringListResult{Items: res.Items, Total: res.Total}, nil
}
