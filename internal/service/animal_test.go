package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	repoMocks "shelterapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeCache is an in-memory Cache for asserting hits and invalidation.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, v any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *fakeCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func validAnimalInput() AnimalInput {
	return AnimalInput{
		Name:      "Rex",
		Species:   model.SpeciesDog,
		BreedID:   "breed-1",
		ShelterID: "shelter-1",
		AgeMonths: 24,
		Sex:       model.SexMale,
	}
}

func TestAnimalService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         AnimalInput
		setupMocks func(mRepo *repoMocks.MockAnimalRepository, mBreeds *repoMocks.MockBreedRepository, mShelters *repoMocks.MockShelterRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			in:   validAnimalInput(),
			setupMocks: func(mRepo *repoMocks.MockAnimalRepository, mBreeds *repoMocks.MockBreedRepository, mShelters *repoMocks.MockShelterRepository) {
				mBreeds.On("FindByID", ctx, "breed-1").Return(&model.Breed{ID: "breed-1"}, nil)
				mShelters.On("FindByID", ctx, "shelter-1").Return(&model.Shelter{ID: "shelter-1"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Animal) bool {
					return a.ID != "" && a.State == model.AnimalAvailable && a.Name == "Rex"
				})).Return(&model.Animal{ID: "animal-1", State: model.AnimalAvailable}, nil)
			},
		},
		{
			name: "blank name",
			in: func() AnimalInput {
				in := validAnimalInput()
				in.Name = "   "
				return in
			}(),
			setupMocks: func(*repoMocks.MockAnimalRepository, *repoMocks.MockBreedRepository, *repoMocks.MockShelterRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "unknown species",
			in: func() AnimalInput {
				in := validAnimalInput()
				in.Species = "dragon"
				return in
			}(),
			setupMocks: func(*repoMocks.MockAnimalRepository, *repoMocks.MockBreedRepository, *repoMocks.MockShelterRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "dangling breed reference",
			in:   validAnimalInput(),
			setupMocks: func(mRepo *repoMocks.MockAnimalRepository, mBreeds *repoMocks.MockBreedRepository, mShelters *repoMocks.MockShelterRepository) {
				mBreeds.On("FindByID", ctx, "breed-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "dangling shelter reference",
			in:   validAnimalInput(),
			setupMocks: func(mRepo *repoMocks.MockAnimalRepository, mBreeds *repoMocks.MockBreedRepository, mShelters *repoMocks.MockShelterRepository) {
				mBreeds.On("FindByID", ctx, "breed-1").Return(&model.Breed{ID: "breed-1"}, nil)
				mShelters.On("FindByID", ctx, "shelter-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockAnimalRepository)
			mBreeds := new(repoMocks.MockBreedRepository)
			mShelters := new(repoMocks.MockShelterRepository)
			svc := NewAnimalService(mRepo, mBreeds, mShelters, newFakeCache(), time.Minute)

			tt.setupMocks(mRepo, mBreeds, mShelters)

			a, err := svc.Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, a)
			}
			mRepo.AssertExpectations(t)
			mBreeds.AssertExpectations(t)
			mShelters.AssertExpectations(t)
		})
	}
}

func TestAnimalService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAnimalRepository)
	svc := NewAnimalService(mRepo, nil, nil, newFakeCache(), time.Minute)

	mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)
	mRepo.AssertExpectations(t)
}

func TestAnimalService_List_CachesResult(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAnimalRepository)
	c := newFakeCache()
	svc := NewAnimalService(mRepo, nil, nil, c, time.Minute)

	f := repository.AnimalFilter{Species: "dog", State: "available"}
	mRepo.On("List", ctx, f, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Animal]{
			Items: []model.Animal{{ID: "a1"}, {ID: "a2"}},
			Total: 2,
		}, nil).Once()

	// First call misses the cache and hits the repository.
	res, err := svc.List(ctx, f, 0, -1)
	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.Total)

	// Second call is served from the cache; the mock allows one List only.
	res, err = svc.List(ctx, f, 0, -1)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	mRepo.AssertExpectations(t)
}

func TestAnimalService_Create_InvalidatesListCache(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAnimalRepository)
	mBreeds := new(repoMocks.MockBreedRepository)
	mShelters := new(repoMocks.MockShelterRepository)
	c := newFakeCache()
	svc := NewAnimalService(mRepo, mBreeds, mShelters, c, time.Minute)

	f := repository.AnimalFilter{}
	mRepo.On("List", ctx, f, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Animal]{Items: []model.Animal{{ID: "a1"}}, Total: 1}, nil).Twice()
	mBreeds.On("FindByID", ctx, "breed-1").Return(&model.Breed{ID: "breed-1"}, nil)
	mShelters.On("FindByID", ctx, "shelter-1").Return(&model.Shelter{ID: "shelter-1"}, nil)
	mRepo.On("Create", ctx, mock.Anything).Return(&model.Animal{ID: "a2"}, nil)

	_, err := svc.List(ctx, f, 10, 0)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, validAnimalInput())
	assert.NoError(t, err)

	// The write dropped the cached listing, so List goes back to the repo.
	_, err = svc.List(ctx, f, 10, 0)
	assert.NoError(t, err)

	mRepo.AssertExpectations(t)
}

func TestAnimalService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockAnimalRepository)
		svc := NewAnimalService(mRepo, nil, nil, newFakeCache(), time.Minute)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "missing", validAnimalInput())
		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertExpectations(t)
	})

	t.Run("state survives the update", func(t *testing.T) {
		mRepo := new(repoMocks.MockAnimalRepository)
		mBreeds := new(repoMocks.MockBreedRepository)
		mShelters := new(repoMocks.MockShelterRepository)
		svc := NewAnimalService(mRepo, mBreeds, mShelters, newFakeCache(), time.Minute)

		mRepo.On("FindByID", ctx, "a1").
			Return(&model.Animal{ID: "a1", State: model.AnimalFostered}, nil)
		mBreeds.On("FindByID", ctx, "breed-1").Return(&model.Breed{ID: "breed-1"}, nil)
		mShelters.On("FindByID", ctx, "shelter-1").Return(&model.Shelter{ID: "shelter-1"}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(a *model.Animal) bool {
			return a.State == model.AnimalFostered && a.Name == "Rex"
		})).Return(&model.Animal{ID: "a1", State: model.AnimalFostered}, nil)

		_, err := svc.Update(ctx, "a1", validAnimalInput())
		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})
}

func TestAnimalService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAnimalRepository)
	svc := NewAnimalService(mRepo, nil, nil, newFakeCache(), time.Minute)

	mRepo.On("FindByID", ctx, "a1").Return(&model.Animal{ID: "a1"}, nil)
	mRepo.On("Delete", ctx, "a1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "a1"))

	mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)

	mRepo.On("FindByID", ctx, "a2").Return(&model.Animal{ID: "a2"}, nil)
	mRepo.On("Delete", ctx, "a2").Return(errors.New("db fail"))
	assert.Error(t, svc.Delete(ctx, "a2"))

	mRepo.AssertExpectations(t)
}
