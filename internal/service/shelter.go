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

// minutesPerDay bounds the opening-hours fields.
const minutesPerDay = 24 * 60

// ShelterInput carries the writable fields of a shelter.
type ShelterInput struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	AdminID  string `json:"admin_id"`
	OpensAt  int    `json:"opens_at"`
	ClosesAt int    `json:"closes_at"`
}

// SlotInput carries the fields of a new activity slot.
type SlotInput struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// ShelterListResult is the service-level DTO for paginated shelters.
type ShelterListResult struct {
	Items []model.Shelter `json:"data"`
	Total int             `json:"total"`
}

// SlotListResult is the service-level DTO for paginated slots.
type SlotListResult struct {
	Items []model.ActivitySlot `json:"data"`
	Total int                  `json:"total"`
}

// ShelterService defines the use cases for shelters and their slots.
type ShelterService interface {
	Create(ctx context.Context, in ShelterInput) (*model.Shelter, error)
	Get(ctx context.Context, id string) (*model.Shelter, error)
	List(ctx context.Context, limit, offset int) (*ShelterListResult, error)
	Update(ctx context.Context, id string, in ShelterInput) (*model.Shelter, error)

	// CreateSlot publishes a bookable window. Only the shelter admin may
	// publish, and the window must sit inside opening hours.
	CreateSlot(ctx context.Context, actorID, shelterID string, in SlotInput) (*model.ActivitySlot, error)

	// ListSlots returns a shelter's slots, optionally filtered by status.
	ListSlots(ctx context.Context, shelterID, status string, limit, offset int) (*SlotListResult, error)
}

type shelterService struct {
	repo  repository.ShelterRepository
	slots repository.SlotRepository
	users repository.UserRepository
	now   func() time.Time
}

// NewShelterService constructs a new ShelterService.
func NewShelterService(
	repo repository.ShelterRepository,
	slots repository.SlotRepository,
	users repository.UserRepository,
) ShelterService {
	return &shelterService{repo: repo, slots: slots, users: users, now: time.Now}
}

func (s *shelterService) validateInput(ctx context.Context, in ShelterInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" {
		return ErrInvalidInput
	}
	if in.OpensAt < 0 || in.ClosesAt > minutesPerDay || in.OpensAt >= in.ClosesAt {
		return ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, in.AdminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidInput
		}
		return err
	}
	return nil
}

func (s *shelterService) Create(ctx context.Context, in ShelterInput) (*model.Shelter, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	sh := &model.Shelter{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		City:      strings.TrimSpace(in.City),
		Address:   in.Address,
		Phone:     in.Phone,
		AdminID:   in.AdminID,
		OpensAt:   in.OpensAt,
		ClosesAt:  in.ClosesAt,
		CreatedAt: s.now().UTC(),
	}
	return s.repo.Create(ctx, sh)
}

func (s *shelterService) Get(ctx context.Context, id string) (*model.Shelter, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sh, nil
}

func (s *shelterService) List(ctx context.Context, limit, offset int) (*ShelterListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ShelterListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *shelterService) Update(ctx context.Context, id string, in ShelterInput) (*model.Shelter, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	sh := &model.Shelter{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		City:     strings.TrimSpace(in.City),
		Address:  in.Address,
		Phone:    in.Phone,
		AdminID:  in.AdminID,
		OpensAt:  in.OpensAt,
		ClosesAt: in.ClosesAt,
	}
	return s.repo.Update(ctx, sh)
}

// minutesOfDay projects a timestamp onto the shelter's wall clock.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// withinOpeningHours reports whether [start, end] fits the shelter's
// opening window on a single day.
func withinOpeningHours(sh *model.Shelter, start, end time.Time) bool {
	if start.YearDay() != end.YearDay() || start.Year() != end.Year() {
		return false
	}
	return minutesOfDay(start) >= sh.OpensAt && minutesOfDay(end) <= sh.ClosesAt
}

func (s *shelterService) CreateSlot(ctx context.Context, actorID, shelterID string, in SlotInput) (*model.ActivitySlot, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}
	sh, err := s.Get(ctx, shelterID)
	if err != nil {
		return nil, err
	}
	if sh.AdminID != actorID {
		return nil, ErrForbidden
	}
	if !in.EndsAt.After(in.StartsAt) {
		return nil, ErrInvalidInput
	}
	if !withinOpeningHours(sh, in.StartsAt, in.EndsAt) {
		return nil, ErrSlotOutsideHours
	}

	slot := &model.ActivitySlot{
		ID:        uuid.NewString(),
		ShelterID: shelterID,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Status:    model.SlotAvailable,
	}
	return s.slots.Create(ctx, slot)
}

func (s *shelterService) ListSlots(ctx context.Context, shelterID, status string, limit, offset int) (*SlotListResult, error) {
	if shelterID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.slots.ListByShelter(ctx, shelterID, status, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SlotListResult{Items: res.Items, Total: res.Total}, nil
}
