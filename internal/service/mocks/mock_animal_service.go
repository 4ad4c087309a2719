package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

type MockAnimalService struct {
	mock.Mock
}

func (m *MockAnimalService) Create(ctx context.Context, in service.AnimalInput) (*model.Animal, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalService) Get(ctx context.Context, id string) (*model.Animal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalService) List(ctx context.Context, f repository.AnimalFilter, limit, offset int) (*service.AnimalListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnimalListResult), args.Error(1)
}

func (m *MockAnimalService) Update(ctx context.Context, id string, in service.AnimalInput) (*model.Animal, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBreedService struct {
	mock.Mock
}

func (m *MockBreedService) Create(ctx context.Context, in service.BreedInput) (*model.Breed, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedService) Get(ctx context.Context, id string) (*model.Breed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedService) List(ctx context.Context, species string, limit, offset int) (*service.BreedListResult, error) {
	args := m.Called(ctx, species, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BreedListResult), args.Error(1)
}

func (m *MockBreedService) Update(ctx context.Context, id string, in service.BreedInput) (*model.Breed, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, in service.UserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
