package service

import (
	"context"
	"database/sql"
	"testing"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	repoMocks "shelterapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("animal not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockFavoriteRepository)
		mAnimals := new(repoMocks.MockAnimalRepository)
		svc := NewFavoriteService(mRepo, mAnimals)

		mAnimals.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, svc.Add(ctx, "user-1", "missing"), ErrNotFound)
	})

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockFavoriteRepository)
		mAnimals := new(repoMocks.MockAnimalRepository)
		svc := NewFavoriteService(mRepo, mAnimals)

		mAnimals.On("FindByID", ctx, "animal-1").Return(&model.Animal{ID: "animal-1"}, nil)
		mRepo.On("Add", ctx, mock.MatchedBy(func(f *model.Favorite) bool {
			return f.UserID == "user-1" && f.AnimalID == "animal-1"
		})).Return(nil)

		assert.NoError(t, svc.Add(ctx, "user-1", "animal-1"))
		mRepo.AssertExpectations(t)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockFavoriteRepository)
	svc := NewFavoriteService(mRepo, nil)

	mRepo.On("Remove", ctx, "user-1", "animal-1").Return(nil)
	assert.NoError(t, svc.Remove(ctx, "user-1", "animal-1"))

	assert.ErrorIs(t, svc.Remove(ctx, "", "animal-1"), ErrActorRequired)
	mRepo.AssertExpectations(t)
}

func TestFavoriteService_ListByUser(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockFavoriteRepository)
	svc := NewFavoriteService(mRepo, nil)

	mRepo.On("ListByUser", ctx, "user-1", repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Animal]{
			Items: []model.Animal{{ID: "animal-1"}},
			Total: 1,
		}, nil)

	res, err := svc.ListByUser(ctx, "user-1", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	mRepo.AssertExpectations(t)
}
