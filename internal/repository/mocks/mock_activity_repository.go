package mocks

import (
	"context"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateReservingSlot(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, f repository.ActivityFilter, pq repository.PageQuery) (*repository.PageResult[model.Activity], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Activity]), args.Error(1)
}

func (m *MockActivityRepository) UpdateStatus(ctx context.Context, id string, status model.ActivityStatus, slotStatus model.SlotStatus) error {
	args := m.Called(ctx, id, status, slotStatus)
	return args.Error(0)
}

func (m *MockActivityRepository) LastCompletedEnd(ctx context.Context, animalID string) (*time.Time, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
