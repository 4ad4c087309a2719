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

// OwnershipRequestInput carries the fields of a new adoption request.
type OwnershipRequestInput struct {
	AnimalID string `json:"animal_id"`
	Message  string `json:"message"`
}

// OwnershipRequestListResult is the service-level DTO for paginated requests.
type OwnershipRequestListResult struct {
	Items []model.OwnershipRequest `json:"data"`
	Total int                      `json:"total"`
}

// OwnershipService defines the adoption-request use cases.
type OwnershipService interface {
	// Create files a request by the acting user for an animal that is
	// still adoptable. Only one non-rejected request per (user, animal)
	// may exist. The first request moves an available animal into
	// analysis.
	Create(ctx context.Context, actorID string, in OwnershipRequestInput) (*model.OwnershipRequest, error)

	// Get returns a single request by its ID.
	Get(ctx context.Context, id string) (*model.OwnershipRequest, error)

	// List returns requests for the filter.
	List(ctx context.Context, f repository.OwnershipRequestFilter, limit, offset int) (*OwnershipRequestListResult, error)

	// UpdateStatus applies a guarded status transition. Only the admin of
	// the animal's shelter may move a request; pending and rejected
	// requests may enter analysis, and only analysed requests may be
	// approved or rejected. Approval claims the animal for the requester
	// and rejects all competing open requests.
	UpdateStatus(ctx context.Context, actorID, id string, next model.OwnershipStatus) (*model.OwnershipRequest, error)
}

type ownershipService struct {
	repo     repository.OwnershipRequestRepository
	animals  repository.AnimalRepository
	shelters repository.ShelterRepository
	cache    cache.Cache
	now      func() time.Time
}

// NewOwnershipService constructs a new OwnershipService.
func NewOwnershipService(
	repo repository.OwnershipRequestRepository,
	animals repository.AnimalRepository,
	shelters repository.ShelterRepository,
	c cache.Cache,
) OwnershipService {
	return &ownershipService{
		repo:     repo,
		animals:  animals,
		shelters: shelters,
		cache:    c,
		now:      time.Now,
	}
}

func (s *ownershipService) Create(ctx context.Context, actorID string, in OwnershipRequestInput) (*model.OwnershipRequest, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if in.AnimalID == "" {
		return nil, ErrIDRequired
	}

	animal, err := s.animals.FindByID(ctx, in.AnimalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if animal.State != model.AnimalAvailable && animal.State != model.AnimalInAnalysis {
		return nil, ErrAnimalUnavailable
	}

	open, err := s.repo.HasOpen(ctx, in.AnimalID, actorID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrRequestAlreadyOpen
	}

	now := s.now().UTC()
	req := &model.OwnershipRequest{
		ID:        uuid.NewString(),
		AnimalID:  in.AnimalID,
		UserID:    actorID,
		Status:    model.OwnershipPending,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	// The first request takes the animal off the adoptable listing.
	if animal.State == model.AnimalAvailable {
		if err := s.animals.UpdateState(ctx, animal.ID, model.AnimalInAnalysis, nil); err != nil {
			return nil, err
		}
		_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	}
	return stored, nil
}

func (s *ownershipService) Get(ctx context.Context, id string) (*model.OwnershipRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *ownershipService) List(ctx context.Context, f repository.OwnershipRequestFilter, limit, offset int) (*OwnershipRequestListResult, error) {
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
	return &OwnershipRequestListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *ownershipService) UpdateStatus(ctx context.Context, actorID, id string, next model.OwnershipStatus) (*model.OwnershipRequest, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if !next.Valid() {
		return nil, ErrInvalidInput
	}

	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	animal, err := s.animals.FindByID(ctx, req.AnimalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	shelter, err := s.shelters.FindByID(ctx, animal.ShelterID)
	if err != nil {
		return nil, err
	}
	if shelter.AdminID != actorID {
		return nil, ErrForbidden
	}

	if !req.Status.CanTransitionTo(next) {
		return nil, ErrIllegalTransition
	}

	if next == model.OwnershipApproved {
		if animal.State == model.AnimalHasOwner {
			return nil, ErrAnimalUnavailable
		}
		if err := s.repo.Approve(ctx, req.ID, req.AnimalID, req.UserID); err != nil {
			return nil, err
		}
		_ = s.cache.DeletePrefix(ctx, animalListCachePrefix)
	} else {
		if err := s.repo.UpdateStatus(ctx, req.ID, next); err != nil {
			return nil, err
		}
	}

	req.Status = next
	req.UpdatedAt = s.now().UTC()
	return req, nil
}
