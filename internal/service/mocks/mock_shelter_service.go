package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/service"
)

type MockShelterService struct {
	mock.Mock
}

func (m *MockShelterService) Create(ctx context.Context, in service.ShelterInput) (*model.Shelter, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

func (m *MockShelterService) Get(ctx context.Context, id string) (*model.Shelter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

func (m *MockShelterService) List(ctx context.Context, limit, offset int) (*service.ShelterListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShelterListResult), args.Error(1)
}

func (m *MockShelterService) Update(ctx context.Context, id string, in service.ShelterInput) (*model.Shelter, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

func (m *MockShelterService) CreateSlot(ctx context.Context, actorID, shelterID string, in service.SlotInput) (*model.ActivitySlot, error) {
	args := m.Called(ctx, actorID, shelterID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivitySlot), args.Error(1)
}

func (m *MockShelterService) ListSlots(ctx context.Context, shelterID, status string, limit, offset int) (*service.SlotListResult, error) {
	args := m.Called(ctx, shelterID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotListResult), args.Error(1)
}
