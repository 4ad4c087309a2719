package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

type MockOwnershipService struct {
	mock.Mock
}

func (m *MockOwnershipService) Create(ctx context.Context, actorID string, in service.OwnershipRequestInput) (*model.OwnershipRequest, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipRequest), args.Error(1)
}

func (m *MockOwnershipService) Get(ctx context.Context, id string) (*model.OwnershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipRequest), args.Error(1)
}

func (m *MockOwnershipService) List(ctx context.Context, f repository.OwnershipRequestFilter, limit, offset int) (*service.OwnershipRequestListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OwnershipRequestListResult), args.Error(1)
}

func (m *MockOwnershipService) UpdateStatus(ctx context.Context, actorID, id string, status model.OwnershipStatus) (*model.OwnershipRequest, error) {
	args := m.Called(ctx, actorID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipRequest), args.Error(1)
}

type MockFosteringService struct {
	mock.Mock
}

func (m *MockFosteringService) Create(ctx context.Context, actorID, animalID string) (*model.Fostering, error) {
	args := m.Called(ctx, actorID, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fostering), args.Error(1)
}

func (m *MockFosteringService) End(ctx context.Context, actorID, id string) (*model.Fostering, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fostering), args.Error(1)
}

func (m *MockFosteringService) List(ctx context.Context, f repository.FosteringFilter, limit, offset int) (*service.FosteringListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FosteringListResult), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, actorID, animalID string) error {
	args := m.Called(ctx, actorID, animalID)
	return args.Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, actorID, animalID string) error {
	args := m.Called(ctx, actorID, animalID)
	return args.Error(0)
}

func (m *MockFavoriteService) ListByUser(ctx context.Context, userID string, limit, offset int) (*service.AnimalListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnimalListResult), args.Error(1)
}
