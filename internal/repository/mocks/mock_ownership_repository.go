package mocks

import (
	"context"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockOwnershipRequestRepository struct {
	mock.Mock
}

func (m *MockOwnershipRequestRepository) Create(ctx context.Context, r *model.OwnershipRequest) (*model.OwnershipRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipRequest), args.Error(1)
}

func (m *MockOwnershipRequestRepository) FindByID(ctx context.Context, id string) (*model.OwnershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipRequest), args.Error(1)
}

func (m *MockOwnershipRequestRepository) List(ctx context.Context, f repository.OwnershipRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.OwnershipRequest], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.OwnershipRequest]), args.Error(1)
}

func (m *MockOwnershipRequestRepository) UpdateStatus(ctx context.Context, id string, status model.OwnershipStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOwnershipRequestRepository) HasOpen(ctx context.Context, animalID, userID string) (bool, error) {
	args := m.Called(ctx, animalID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnershipRequestRepository) HasApproved(ctx context.Context, animalID, userID string) (bool, error) {
	args := m.Called(ctx, animalID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnershipRequestRepository) Approve(ctx context.Context, id, animalID, userID string) error {
	args := m.Called(ctx, id, animalID, userID)
	return args.Error(0)
}

type MockFosteringRepository struct {
	mock.Mock
}

func (m *MockFosteringRepository) Create(ctx context.Context, f *model.Fostering) (*model.Fostering, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fostering), args.Error(1)
}

func (m *MockFosteringRepository) FindByID(ctx context.Context, id string) (*model.Fostering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fostering), args.Error(1)
}

func (m *MockFosteringRepository) List(ctx context.Context, f repository.FosteringFilter, pq repository.PageQuery) (*repository.PageResult[model.Fostering], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Fostering]), args.Error(1)
}

func (m *MockFosteringRepository) FindActive(ctx context.Context, animalID, userID string) (*model.Fostering, error) {
	args := m.Called(ctx, animalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fostering), args.Error(1)
}

func (m *MockFosteringRepository) End(ctx context.Context, id string, endedAt time.Time) error {
	args := m.Called(ctx, id, endedAt)
	return args.Error(0)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, f *model.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, animalID string) error {
	args := m.Called(ctx, userID, animalID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Animal], error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Animal]), args.Error(1)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageRepository) FindByID(ctx context.Context, id string) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageRepository) ListByAnimal(ctx context.Context, animalID string, pq repository.PageQuery) (*repository.PageResult[model.Image], error) {
	args := m.Called(ctx, animalID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Image]), args.Error(1)
}

func (m *MockImageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
