package repository

import (
	"context"
	"time"

	"shelterapi/internal/model"
)

// ActivityFilter narrows activity listings. Empty fields are ignored.
type ActivityFilter struct {
	AnimalID string
	UserID   string
	Status   string
}

// ActivityRepository defines data access for scheduled activities.
// The slot row moves in lockstep with the activity, so the mutating
// operations update both inside a single transaction.
type ActivityRepository interface {
	// CreateReservingSlot inserts the activity and flips its slot to
	// reserved in one transaction. The slot must still be available;
	// a reserved slot makes the transaction fail with sql.ErrNoRows.
	CreateReservingSlot(ctx context.Context, a *model.Activity) (*model.Activity, error)

	// FindByID returns an activity by its ID.
	FindByID(ctx context.Context, id string) (*model.Activity, error)

	// List returns a paginated list of activities for the given filter.
	List(ctx context.Context, f ActivityFilter, pq PageQuery) (*PageResult[model.Activity], error)

	// UpdateStatus sets the activity status and its slot status in one transaction.
	UpdateStatus(ctx context.Context, id string, status model.ActivityStatus, slotStatus model.SlotStatus) error

	// LastCompletedEnd returns the slot end time of the animal's most
	// recently completed activity, or nil when there is none.
	LastCompletedEnd(ctx context.Context, animalID string) (*time.Time, error)
}
