package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var animalCols = []string{
	"id", "name", "species", "breed_id", "shelter_id", "age_months",
	"sex", "description", "state", "owner_id", "created_at", "updated_at",
}

func animalRow(id string) *sqlmock.Rows {
	return sqlmock.NewRows(animalCols).
		AddRow(id, "Rex", "dog", "breed-1", "shelter-1", 24,
			"male", "", "available", nil, time.Now(), time.Now())
}

func TestAnimalPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnimalPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	a := &model.Animal{
		ID:        "animal-1",
		Name:      "Rex",
		Species:   model.SpeciesDog,
		BreedID:   "breed-1",
		ShelterID: "shelter-1",
		AgeMonths: 24,
		Sex:       model.SexMale,
		State:     model.AnimalAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO animals").
		WithArgs(a.ID, a.Name, a.Species, a.BreedID, a.ShelterID, a.AgeMonths,
			a.Sex, a.Description, a.State, nil, a.CreatedAt, a.UpdatedAt).
		WillReturnRows(animalRow("animal-1"))

	result, err := repo.Create(ctx, a)

	assert.NoError(t, err)
	assert.Equal(t, "animal-1", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnimalPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnimalPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM animals WHERE id = ?").
			WithArgs("animal-1").
			WillReturnRows(animalRow("animal-1"))

		a, err := repo.FindByID(ctx, "animal-1")

		assert.NoError(t, err)
		assert.Equal(t, "animal-1", a.ID)
		assert.Nil(t, a.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM animals WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, a)
	})
}

func TestAnimalPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnimalPostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM animals").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM animals ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(animalRow("animal-1"))

		res, err := repo.List(ctx, repository.AnimalFilter{}, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("filtered by species and state", func(t *testing.T) {
		f := repository.AnimalFilter{Species: "dog", State: "available"}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM animals WHERE species = (.+) AND state = ?").
			WithArgs("dog", "available").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM animals WHERE species = (.+) AND state = (.+) ORDER BY").
			WithArgs("dog", "available", 5, 10).
			WillReturnRows(animalRow("animal-1"))

		res, err := repo.List(ctx, f, repository.PageQuery{Limit: 5, Offset: 10})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnimalPostgres_UpdateState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnimalPostgres(db)
	ctx := context.Background()

	t.Run("sets owner on adoption", func(t *testing.T) {
		owner := "user-1"
		mock.ExpectExec("UPDATE animals SET state = (.+), owner_id = ?").
			WithArgs("animal-1", "has_owner", owner).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateState(ctx, "animal-1", model.AnimalHasOwner, &owner)
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE animals SET state = ?").
			WithArgs("missing", "available", nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateState(ctx, "missing", model.AnimalAvailable, nil)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestAnimalPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnimalPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM animals WHERE id = ?").
		WithArgs("animal-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, "animal-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
