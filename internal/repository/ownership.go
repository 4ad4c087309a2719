package repository

import (
	"context"
	"time"

	"shelterapi/internal/model"
)

// OwnershipRequestFilter narrows request listings. Empty fields are ignored.
type OwnershipRequestFilter struct {
	AnimalID string
	UserID   string
	Status   string
}

// OwnershipRequestRepository defines data access for adoption requests.
type OwnershipRequestRepository interface {
	Create(ctx context.Context, r *model.OwnershipRequest) (*model.OwnershipRequest, error)
	FindByID(ctx context.Context, id string) (*model.OwnershipRequest, error)
	List(ctx context.Context, f OwnershipRequestFilter, pq PageQuery) (*PageResult[model.OwnershipRequest], error)

	// UpdateStatus sets the request status.
	UpdateStatus(ctx context.Context, id string, status model.OwnershipStatus) error

	// HasOpen reports whether the user already has a non-rejected request for the animal.
	HasOpen(ctx context.Context, animalID, userID string) (bool, error)

	// HasApproved reports whether the user holds an approved request for the animal.
	HasApproved(ctx context.Context, animalID, userID string) (bool, error)

	// Approve runs the approval transaction: the request becomes approved,
	// every other open request for the animal is rejected, and the animal
	// row moves to has_owner with the requester as owner.
	Approve(ctx context.Context, id, animalID, userID string) error
}

// FosteringFilter narrows fostering listings. Empty fields are ignored.
type FosteringFilter struct {
	AnimalID string
	UserID   string
	Status   string
}

// FosteringRepository defines data access for foster-care relationships.
type FosteringRepository interface {
	Create(ctx context.Context, f *model.Fostering) (*model.Fostering, error)
	FindByID(ctx context.Context, id string) (*model.Fostering, error)
	List(ctx context.Context, f FosteringFilter, pq PageQuery) (*PageResult[model.Fostering], error)

	// FindActive returns the user's active fostering for the animal, or sql.ErrNoRows.
	FindActive(ctx context.Context, animalID, userID string) (*model.Fostering, error)

	// End marks the fostering ended at the given time.
	End(ctx context.Context, id string, endedAt time.Time) error
}

// FavoriteRepository defines data access for user favorites.
type FavoriteRepository interface {
	// Add inserts the pair; adding an existing favorite is a no-op.
	Add(ctx context.Context, f *model.Favorite) error

	// Remove deletes the pair; removing a missing favorite is a no-op.
	Remove(ctx context.Context, userID, animalID string) error

	// ListByUser returns the user's favorited animals.
	ListByUser(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.Animal], error)
}

// ImageRepository defines data access for animal image metadata.
type ImageRepository interface {
	Create(ctx context.Context, img *model.Image) (*model.Image, error)
	FindByID(ctx context.Context, id string) (*model.Image, error)
	ListByAnimal(ctx context.Context, animalID string, pq PageQuery) (*PageResult[model.Image], error)
	Delete(ctx context.Context, id string) error
}
