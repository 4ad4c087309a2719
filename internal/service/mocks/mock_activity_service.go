package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) CreateOwnership(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	args := m.Called(ctx, actorID, animalID, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) CreateFostering(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	args := m.Called(ctx, actorID, animalID, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) CreateVisit(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error) {
	args := m.Called(ctx, actorID, animalID, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) Cancel(ctx context.Context, actorID, id string) (*model.Activity, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) Complete(ctx context.Context, actorID, id string) (*model.Activity, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*service.ActivityListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ActivityListResult), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, animalID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Image, error) {
	args := m.Called(ctx, animalID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Get(ctx context.Context, id string) (*service.ImageWithURL, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageWithURL), args.Error(1)
}

func (m *MockImageService) ListByAnimal(ctx context.Context, animalID string, limit, offset int) (*service.ImageListResult, error) {
	args := m.Called(ctx, animalID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageListResult), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
