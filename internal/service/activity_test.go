package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	repoMocks "shelterapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type activityMocks struct {
	repo       *repoMocks.MockActivityRepository
	slots      *repoMocks.MockSlotRepository
	animals    *repoMocks.MockAnimalRepository
	shelters   *repoMocks.MockShelterRepository
	requests   *repoMocks.MockOwnershipRequestRepository
	fosterings *repoMocks.MockFosteringRepository
}

func newActivityService(now time.Time) (ActivityService, *activityMocks) {
	m := &activityMocks{
		repo:       new(repoMocks.MockActivityRepository),
		slots:      new(repoMocks.MockSlotRepository),
		animals:    new(repoMocks.MockAnimalRepository),
		shelters:   new(repoMocks.MockShelterRepository),
		requests:   new(repoMocks.MockOwnershipRequestRepository),
		fosterings: new(repoMocks.MockFosteringRepository),
	}
	svc := NewActivityService(m.repo, m.slots, m.animals, m.shelters, m.requests, m.fosterings)
	svc.(*activityService).now = func() time.Time { return now }
	return svc, m
}

func (m *activityMocks) assertExpectations(t *testing.T) {
	m.repo.AssertExpectations(t)
	m.slots.AssertExpectations(t)
	m.animals.AssertExpectations(t)
	m.shelters.AssertExpectations(t)
	m.requests.AssertExpectations(t)
	m.fosterings.AssertExpectations(t)
}

// Fixtures anchored at 2026-03-01 10:00 UTC. The shelter is open 08:00
// to 18:00 and the good slot starts 28 hours out.
var (
	testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	testShelter = model.Shelter{
		ID:       "shelter-1",
		AdminID:  "admin-1",
		OpensAt:  8 * 60,
		ClosesAt: 18 * 60,
	}

	goodSlot = model.ActivitySlot{
		ID:        "slot-1",
		ShelterID: "shelter-1",
		StartsAt:  time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC),
		Status:    model.SlotAvailable,
	}
)

func availableAnimal() *model.Animal {
	return &model.Animal{ID: "animal-1", ShelterID: "shelter-1", State: model.AnimalAvailable}
}

func TestActivityService_CreateVisit_SlotGuards(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		slot    model.ActivitySlot
		lastEnd *time.Time
		wantErr error
	}{
		{
			name: "happy path",
			slot: goodSlot,
		},
		{
			name: "slot belongs to another shelter",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.ShelterID = "shelter-2"
				return s
			}(),
			wantErr: ErrSlotWrongShelter,
		},
		{
			name: "slot already reserved",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.Status = model.SlotReserved
				return s
			}(),
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "slot starts 23 hours from now",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.StartsAt = testNow.Add(23 * time.Hour)
				s.EndsAt = s.StartsAt.Add(time.Hour)
				return s
			}(),
			wantErr: ErrSlotTooSoon,
		},
		{
			name: "slot starts exactly 24 hours from now",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.StartsAt = testNow.Add(24 * time.Hour)
				s.EndsAt = s.StartsAt.Add(time.Hour)
				return s
			}(),
		},
		{
			name: "slot before opening time",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.StartsAt = time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC)
				s.EndsAt = time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
				return s
			}(),
			wantErr: ErrSlotOutsideHours,
		},
		{
			name: "slot ends after closing time",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.StartsAt = time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
				s.EndsAt = time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
				return s
			}(),
			wantErr: ErrSlotOutsideHours,
		},
		{
			name: "slot spans midnight",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.StartsAt = time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
				s.EndsAt = time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
				return s
			}(),
			wantErr: ErrSlotOutsideHours,
		},
		{
			name: "slot ends before it starts",
			slot: func() model.ActivitySlot {
				s := goodSlot
				s.EndsAt = s.StartsAt.Add(-time.Hour)
				return s
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slot starts before the last completed visit ended",
			slot:    goodSlot,
			lastEnd: timePtr(time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)),
			wantErr: ErrSlotBeforeLastVisit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newActivityService(testNow)

			m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
			m.slots.On("FindByID", ctx, tt.slot.ID).Return(&tt.slot, nil)
			m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil).Maybe()
			if tt.lastEnd != nil {
				m.repo.On("LastCompletedEnd", ctx, "animal-1").Return(tt.lastEnd, nil)
			} else {
				m.repo.On("LastCompletedEnd", ctx, "animal-1").Return(nil, nil).Maybe()
			}
			if tt.wantErr == nil {
				m.repo.On("CreateReservingSlot", ctx, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Kind == model.ActivityVisit && a.Status == model.ActivityActive
				})).Return(&model.Activity{ID: "act-1"}, nil)
			}

			act, err := svc.CreateVisit(ctx, "user-1", "animal-1", tt.slot.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, act)
			}
			m.assertExpectations(t)
		})
	}
}

func TestActivityService_CreateVisit_AnimalGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("missing actor", func(t *testing.T) {
		svc, _ := newActivityService(testNow)
		_, err := svc.CreateVisit(ctx, "", "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrActorRequired)
	})

	t.Run("animal not found", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		_, err := svc.CreateVisit(ctx, "user-1", "missing", "slot-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owned animal cannot take plain visits", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		a := availableAnimal()
		a.State = model.AnimalHasOwner
		m.animals.On("FindByID", ctx, "animal-1").Return(a, nil)
		_, err := svc.CreateVisit(ctx, "user-1", "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrAnimalUnavailable)
	})

	t.Run("slot taken between guard and insert", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
		slot := goodSlot
		m.slots.On("FindByID", ctx, "slot-1").Return(&slot, nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		m.repo.On("LastCompletedEnd", ctx, "animal-1").Return(nil, nil)
		m.repo.On("CreateReservingSlot", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateVisit(ctx, "user-1", "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrSlotUnavailable)
		m.assertExpectations(t)
	})
}

func TestActivityService_CreateOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := "owner-1"

	ownedAnimal := func() *model.Animal {
		a := availableAnimal()
		a.State = model.AnimalHasOwner
		a.OwnerID = &ownerID
		return a
	}

	t.Run("actor is not the owner", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "animal-1").Return(ownedAnimal(), nil)
		_, err := svc.CreateOwnership(ctx, "stranger", "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no approved request on record", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "animal-1").Return(ownedAnimal(), nil)
		m.requests.On("HasApproved", ctx, "animal-1", ownerID).Return(false, nil)
		_, err := svc.CreateOwnership(ctx, ownerID, "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrNoApprovedRequest)
		m.assertExpectations(t)
	})

	t.Run("happy path", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "animal-1").Return(ownedAnimal(), nil)
		m.requests.On("HasApproved", ctx, "animal-1", ownerID).Return(true, nil)
		slot := goodSlot
		m.slots.On("FindByID", ctx, "slot-1").Return(&slot, nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		m.repo.On("LastCompletedEnd", ctx, "animal-1").Return(nil, nil)
		m.repo.On("CreateReservingSlot", ctx, mock.MatchedBy(func(a *model.Activity) bool {
			return a.Kind == model.ActivityOwnership
		})).Return(&model.Activity{ID: "act-1", Kind: model.ActivityOwnership}, nil)

		act, err := svc.CreateOwnership(ctx, ownerID, "animal-1", "slot-1")
		assert.NoError(t, err)
		assert.Equal(t, model.ActivityOwnership, act.Kind)
		m.assertExpectations(t)
	})
}

func TestActivityService_CreateFostering(t *testing.T) {
	ctx := context.Background()

	t.Run("no active fostering", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
		m.fosterings.On("FindActive", ctx, "animal-1", "carer-1").Return(nil, sql.ErrNoRows)
		_, err := svc.CreateFostering(ctx, "carer-1", "animal-1", "slot-1")
		assert.ErrorIs(t, err, ErrFosteringNotActive)
		m.assertExpectations(t)
	})

	t.Run("happy path", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		a := availableAnimal()
		a.State = model.AnimalFostered
		m.animals.On("FindByID", ctx, "animal-1").Return(a, nil)
		m.fosterings.On("FindActive", ctx, "animal-1", "carer-1").
			Return(&model.Fostering{ID: "foster-1", Status: model.FosteringActive}, nil)
		slot := goodSlot
		m.slots.On("FindByID", ctx, "slot-1").Return(&slot, nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		m.repo.On("LastCompletedEnd", ctx, "animal-1").Return(nil, nil)
		m.repo.On("CreateReservingSlot", ctx, mock.MatchedBy(func(a *model.Activity) bool {
			return a.Kind == model.ActivityFostering
		})).Return(&model.Activity{ID: "act-1", Kind: model.ActivityFostering}, nil)

		_, err := svc.CreateFostering(ctx, "carer-1", "animal-1", "slot-1")
		assert.NoError(t, err)
		m.assertExpectations(t)
	})
}

func TestActivityService_Cancel(t *testing.T) {
	ctx := context.Background()

	activeVisit := func() *model.Activity {
		return &model.Activity{
			ID:       "act-1",
			AnimalID: "animal-1",
			UserID:   "user-1",
			SlotID:   "slot-1",
			Kind:     model.ActivityVisit,
			Status:   model.ActivityActive,
		}
	}

	t.Run("only the booking user may cancel", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(activeVisit(), nil)
		_, err := svc.Cancel(ctx, "stranger", "act-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		act := activeVisit()
		act.Status = model.ActivityCancelled
		m.repo.On("FindByID", ctx, "act-1").Return(act, nil)
		_, err := svc.Cancel(ctx, "user-1", "act-1")
		assert.ErrorIs(t, err, ErrActivityNotActive)
	})

	t.Run("already started", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(activeVisit(), nil)
		started := goodSlot
		started.StartsAt = testNow.Add(-time.Hour)
		m.slots.On("FindByID", ctx, "slot-1").Return(&started, nil)
		_, err := svc.Cancel(ctx, "user-1", "act-1")
		assert.ErrorIs(t, err, ErrActivityStarted)
		m.assertExpectations(t)
	})

	t.Run("fostering visit requires a live fostering", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		act := activeVisit()
		act.Kind = model.ActivityFostering
		m.repo.On("FindByID", ctx, "act-1").Return(act, nil)
		m.fosterings.On("FindActive", ctx, "animal-1", "user-1").Return(nil, sql.ErrNoRows)
		_, err := svc.Cancel(ctx, "user-1", "act-1")
		assert.ErrorIs(t, err, ErrFosteringNotActive)
		m.assertExpectations(t)
	})

	t.Run("happy path frees the slot", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(activeVisit(), nil)
		slot := goodSlot
		m.slots.On("FindByID", ctx, "slot-1").Return(&slot, nil)
		m.repo.On("UpdateStatus", ctx, "act-1", model.ActivityCancelled, model.SlotAvailable).Return(nil)

		act, err := svc.Cancel(ctx, "user-1", "act-1")
		assert.NoError(t, err)
		assert.Equal(t, model.ActivityCancelled, act.Status)
		m.assertExpectations(t)
	})
}

func TestActivityService_Complete(t *testing.T) {
	ctx := context.Background()

	startedVisit := func() *model.Activity {
		return &model.Activity{
			ID:       "act-1",
			AnimalID: "animal-1",
			UserID:   "user-1",
			SlotID:   "slot-1",
			Kind:     model.ActivityVisit,
			Status:   model.ActivityActive,
		}
	}
	startedSlot := func() *model.ActivitySlot {
		s := goodSlot
		s.StartsAt = testNow.Add(-time.Hour)
		s.EndsAt = testNow.Add(time.Hour)
		s.Status = model.SlotReserved
		return &s
	}

	t.Run("only the shelter admin may complete", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(startedVisit(), nil)
		m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		_, err := svc.Complete(ctx, "user-1", "act-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not started yet", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(startedVisit(), nil)
		m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		future := goodSlot
		m.slots.On("FindByID", ctx, "slot-1").Return(&future, nil)
		_, err := svc.Complete(ctx, "admin-1", "act-1")
		assert.ErrorIs(t, err, ErrActivityNotStarted)
		m.assertExpectations(t)
	})

	t.Run("happy path keeps the slot reserved", func(t *testing.T) {
		svc, m := newActivityService(testNow)
		m.repo.On("FindByID", ctx, "act-1").Return(startedVisit(), nil)
		m.animals.On("FindByID", ctx, "animal-1").Return(availableAnimal(), nil)
		m.shelters.On("FindByID", ctx, "shelter-1").Return(&testShelter, nil)
		m.slots.On("FindByID", ctx, "slot-1").Return(startedSlot(), nil)
		m.repo.On("UpdateStatus", ctx, "act-1", model.ActivityCompleted, model.SlotReserved).Return(nil)

		act, err := svc.Complete(ctx, "admin-1", "act-1")
		assert.NoError(t, err)
		assert.Equal(t, model.ActivityCompleted, act.Status)
		m.assertExpectations(t)
	})
}

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()
	svc, m := newActivityService(testNow)

	f := repository.ActivityFilter{UserID: "user-1"}
	m.repo.On("List", ctx, f, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Activity]{
			Items: []model.Activity{{ID: "act-1"}},
			Total: 1,
		}, nil)

	res, err := svc.List(ctx, f, 0, -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	m.assertExpectations(t)
}

func timePtr(t time.Time) *time.Time { return &t }
