package mocks

import (
	"context"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAnimalRepository struct {
	mock.Mock
}

func (m *MockAnimalRepository) Create(ctx context.Context, a *model.Animal) (*model.Animal, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindByID(ctx context.Context, id string) (*model.Animal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalRepository) List(ctx context.Context, f repository.AnimalFilter, pq repository.PageQuery) (*repository.PageResult[model.Animal], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Animal]), args.Error(1)
}

func (m *MockAnimalRepository) Update(ctx context.Context, a *model.Animal) (*model.Animal, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockAnimalRepository) UpdateState(ctx context.Context, id string, state model.AnimalState, ownerID *string) error {
	args := m.Called(ctx, id, state, ownerID)
	return args.Error(0)
}

func (m *MockAnimalRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBreedRepository struct {
	mock.Mock
}

func (m *MockBreedRepository) Create(ctx context.Context, b *model.Breed) (*model.Breed, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedRepository) FindByID(ctx context.Context, id string) (*model.Breed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedRepository) List(ctx context.Context, species string, pq repository.PageQuery) (*repository.PageResult[model.Breed], error) {
	args := m.Called(ctx, species, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Breed]), args.Error(1)
}

func (m *MockBreedRepository) Update(ctx context.Context, b *model.Breed) (*model.Breed, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Breed), args.Error(1)
}

func (m *MockBreedRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
