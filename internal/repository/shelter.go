package repository

import (
	"context"

	"shelterapi/internal/model"
)

// ShelterRepository defines data access for shelters.
type ShelterRepository interface {
	Create(ctx context.Context, s *model.Shelter) (*model.Shelter, error)
	FindByID(ctx context.Context, id string) (*model.Shelter, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Shelter], error)
	Update(ctx context.Context, s *model.Shelter) (*model.Shelter, error)
}

// SlotRepository defines data access for published activity slots.
type SlotRepository interface {
	Create(ctx context.Context, s *model.ActivitySlot) (*model.ActivitySlot, error)
	FindByID(ctx context.Context, id string) (*model.ActivitySlot, error)

	// ListByShelter returns a shelter's slots, optionally filtered by status.
	ListByShelter(ctx context.Context, shelterID, status string, pq PageQuery) (*PageResult[model.ActivitySlot], error)
}
