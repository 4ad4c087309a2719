package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// minAdvanceNotice is how far ahead a visit must be booked.
const minAdvanceNotice = 24 * time.Hour

// ActivityListResult is the service-level DTO for paginated activities.
type ActivityListResult struct {
	Items []model.Activity `json:"data"`
	Total int              `json:"total"`
}

// ActivityService defines the visit-scheduling use cases.
//
// Every booking shares the slot guards: the slot must exist, belong to
// the animal's shelter, still be available, start at least 24 hours
// from now, sit inside the shelter's opening hours, and start after the
// animal's last completed visit ended. Each kind then adds its own
// eligibility guard.
type ActivityService interface {
	// CreateOwnership books a post-adoption visit. The actor must be the
	// animal's owner with an approved ownership request.
	CreateOwnership(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error)

	// CreateFostering books a visit under an active fostering.
	CreateFostering(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error)

	// CreateVisit books a plain get-to-know visit for an adoptable or
	// fostered animal.
	CreateVisit(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error)

	// Cancel cancels the actor's own active activity before it starts
	// and frees the slot.
	Cancel(ctx context.Context, actorID, id string) (*model.Activity, error)

	// Complete is the shelter admin marking a started activity done.
	// The slot stays reserved so the window can't be rebooked.
	Complete(ctx context.Context, actorID, id string) (*model.Activity, error)

	// List returns activities for the filter.
	List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*ActivityListResult, error)
}

type activityService struct {
	repo       repository.ActivityRepository
	slots      repository.SlotRepository
	animals    repository.AnimalRepository
	shelters   repository.ShelterRepository
	requests   repository.OwnershipRequestRepository
	fosterings repository.FosteringRepository
	now        func() time.Time
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(
	repo repository.ActivityRepository,
	slots repository.SlotRepository,
	animals repository.AnimalRepository,
	shelters repository.ShelterRepository,
	requests repository.OwnershipRequestRepository,
	fosterings repository.FosteringRepository,
) ActivityService {
	return &activityService{
		repo:       repo,
		slots:      slots,
		animals:    animals,
		shelters:   shelters,
		requests:   requests,
		fosterings: fosterings,
		now:        time.Now,
	}
}

func (s *activityService) findAnimal(ctx context.Context, id string) (*model.Animal, error) {
	a, err := s.animals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// checkSlot runs the shared slot guards and returns the slot.
func (s *activityService) checkSlot(ctx context.Context, animal *model.Animal, slotID string) (*model.ActivitySlot, error) {
	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if slot.ShelterID != animal.ShelterID {
		return nil, ErrSlotWrongShelter
	}
	if slot.Status != model.SlotAvailable {
		return nil, ErrSlotUnavailable
	}
	if !slot.EndsAt.After(slot.StartsAt) {
		return nil, ErrInvalidInput
	}
	if slot.StartsAt.Sub(s.now()) < minAdvanceNotice {
		return nil, ErrSlotTooSoon
	}

	shelter, err := s.shelters.FindByID(ctx, animal.ShelterID)
	if err != nil {
		return nil, err
	}
	if !withinOpeningHours(shelter, slot.StartsAt, slot.EndsAt) {
		return nil, ErrSlotOutsideHours
	}

	lastEnd, err := s.repo.LastCompletedEnd(ctx, animal.ID)
	if err != nil {
		return nil, err
	}
	if lastEnd != nil && !slot.StartsAt.After(*lastEnd) {
		return nil, ErrSlotBeforeLastVisit
	}
	return slot, nil
}

func (s *activityService) book(ctx context.Context, actorID, animalID, slotID string, kind model.ActivityKind) (*model.Activity, error) {
	now := s.now().UTC()
	a := &model.Activity{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		UserID:    actorID,
		SlotID:    slotID,
		Kind:      kind,
		Status:    model.ActivityActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.CreateReservingSlot(ctx, a)
	if err != nil {
		// The slot was taken between the guard check and the insert.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return stored, nil
}

func (s *activityService) CreateOwnership(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	animal, err := s.findAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if animal.OwnerID == nil || *animal.OwnerID != actorID {
		return nil, ErrForbidden
	}
	if animal.State != model.AnimalHasOwner {
		return nil, ErrAnimalUnavailable
	}
	approved, err := s.requests.HasApproved(ctx, animalID, actorID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, ErrNoApprovedRequest
	}
	if _, err := s.checkSlot(ctx, animal, slotID); err != nil {
		return nil, err
	}
	return s.book(ctx, actorID, animalID, slotID, model.ActivityOwnership)
}

func (s *activityService) CreateFostering(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	animal, err := s.findAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.fosterings.FindActive(ctx, animalID, actorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFosteringNotActive
		}
		return nil, err
	}
	if _, err := s.checkSlot(ctx, animal, slotID); err != nil {
		return nil, err
	}
	return s.book(ctx, actorID, animalID, slotID, model.ActivityFostering)
}

func (s *activityService) CreateVisit(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	animal, err := s.findAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if animal.State != model.AnimalAvailable && animal.State != model.AnimalFostered {
		return nil, ErrAnimalUnavailable
	}
	if _, err := s.checkSlot(ctx, animal, slotID); err != nil {
		return nil, err
	}
	return s.book(ctx, actorID, animalID, slotID, model.ActivityVisit)
}

func (s *activityService) Cancel(ctx context.Context, actorID, id string) (*model.Activity, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	act, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if act.UserID != actorID {
		return nil, ErrForbidden
	}
	if act.Status != model.ActivityActive {
		return nil, ErrActivityNotActive
	}

	// A fostering visit dies with its fostering.
	if act.Kind == model.ActivityFostering {
		if _, err := s.fosterings.FindActive(ctx, act.AnimalID, actorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrFosteringNotActive
			}
			return nil, err
		}
	}

	slot, err := s.slots.FindByID(ctx, act.SlotID)
	if err != nil {
		return nil, err
	}
	if !slot.StartsAt.After(s.now()) {
		return nil, ErrActivityStarted
	}

	if err := s.repo.UpdateStatus(ctx, act.ID, model.ActivityCancelled, model.SlotAvailable); err != nil {
		return nil, err
	}
	act.Status = model.ActivityCancelled
	act.UpdatedAt = s.now().UTC()
	return act, nil
}

func (s *activityService) Complete(ctx context.Context, actorID, id string) (*model.Activity, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	act, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if act.Status != model.ActivityActive {
		return nil, ErrActivityNotActive
	}

	animal, err := s.findAnimal(ctx, act.AnimalID)
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

	slot, err := s.slots.FindByID(ctx, act.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.StartsAt.After(s.now()) {
		return nil, ErrActivityNotStarted
	}

	if err := s.repo.UpdateStatus(ctx, act.ID, model.ActivityCompleted, model.SlotReserved); err != nil {
		return nil, err
	}
	act.Status = model.ActivityCompleted
	act.UpdatedAt = s.now().UTC()
	return act, nil
}

func (s *activityService) List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*ActivityListResult, error) {
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
	return &ActivityListResult{Items: res.Items, Total: res.Total}, nil
}
