package repository

import (
	"context"

	"shelterapi/internal/model"
)

// AnimalFilter narrows animal listings. Empty fields are ignored.
type AnimalFilter struct {
	Species   string
	State     string
	ShelterID string
	BreedID   string
}

// AnimalRepository defines data access for animals using SQL queries only.
// No business logic here — strictly persistence operations.
type AnimalRepository interface {
	// Create inserts a new animal record and returns the stored row.
	Create(ctx context.Context, a *model.Animal) (*model.Animal, error)

	// FindByID returns an animal by its ID.
	FindByID(ctx context.Context, id string) (*model.Animal, error)

	// List returns a paginated list of animals and total rows count for the given filter.
	List(ctx context.Context, f AnimalFilter, pq PageQuery) (*PageResult[model.Animal], error)

	// Update overwrites the mutable columns of an animal and returns the stored row.
	Update(ctx context.Context, a *model.Animal) (*model.Animal, error)

	// UpdateState changes the lifecycle state and owner reference in one statement.
	UpdateState(ctx context.Context, id string, state model.AnimalState, ownerID *string) error

	// Delete removes an animal by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// BreedRepository defines data access for the breed catalogue.
type BreedRepository interface {
	Create(ctx context.Context, b *model.Breed) (*model.Breed, error)
	FindByID(ctx context.Context, id string) (*model.Breed, error)

	// List returns breeds, optionally filtered by species.
	List(ctx context.Context, species string, pq PageQuery) (*PageResult[model.Breed], error)

	Update(ctx context.Context, b *model.Breed) (*model.Breed, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository defines data access for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}
