package model

import "time"

// AnimalState tracks where an animal sits in the adoption lifecycle.
type AnimalState string

const (
	AnimalAvailable  AnimalState = "available"
	AnimalInAnalysis AnimalState = "in_analysis"
	AnimalHasOwner   AnimalState = "has_owner"
	AnimalFostered   AnimalState = "fostered"
)

// Valid reports whether the state is one of the known values.
func (s AnimalState) Valid() bool {
	switch s {
	case AnimalAvailable, AnimalInAnalysis, AnimalHasOwner, AnimalFostered:
		return true
	}
	return false
}

// Species of an animal.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Sex of an animal.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// Animal represents a sheltered animal.
// This is a pure domain model with no database-specific dependencies or tags.
// Invariant: State == AnimalHasOwner exactly when OwnerID is non-nil; the
// services enforce this on every state change.
type Animal struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Species     Species     `json:"species"`
	BreedID     string      `json:"breed_id"`
	ShelterID   string      `json:"shelter_id"`
	AgeMonths   int         `json:"age_months"`
	Sex         Sex         `json:"sex"`
	Description string      `json:"description"`
	State       AnimalState `json:"state"`
	OwnerID     *string     `json:"owner_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
