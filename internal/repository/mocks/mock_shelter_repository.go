package mocks

import (
	"context"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockShelterRepository struct {
	mock.Mock
}

func (m *MockShelterRepository) Create(ctx context.Context, s *model.Shelter) (*model.Shelter, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

func (m *MockShelterRepository) FindByID(ctx context.Context, id string) (*model.Shelter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

func (m *MockShelterRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Shelter], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Shelter]), args.Error(1)
}

func (m *MockShelterRepository) Update(ctx context.Context, s *model.Shelter) (*model.Shelter, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shelter), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, s *model.ActivitySlot) (*model.ActivitySlot, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivitySlot), args.Error(1)
}

func (m *MockSlotRepository) FindByID(ctx context.Context, id string) (*model.ActivitySlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivitySlot), args.Error(1)
}

func (m *MockSlotRepository) ListByShelter(ctx context.Context, shelterID, status string, pq repository.PageQuery) (*repository.PageResult[model.ActivitySlot], error) {
	args := m.Called(ctx, shelterID, status, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ActivitySlot]), args.Error(1)
}
