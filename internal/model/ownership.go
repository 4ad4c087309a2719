package model

import "time"

// OwnershipStatus is the state of an adoption request.
type OwnershipStatus string

const (
	OwnershipPending   OwnershipStatus = "pending"
	OwnershipAnalysing OwnershipStatus = "analysing"
	OwnershipApproved  OwnershipStatus = "approved"
	OwnershipRejected  OwnershipStatus = "rejected"
)

func (s OwnershipStatus) Valid() bool {
	switch s {
	case OwnershipPending, OwnershipAnalysing, OwnershipApproved, OwnershipRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is legal:
// pending or rejected requests can enter analysis, and only requests
// under analysis can be approved or rejected.
func (s OwnershipStatus) CanTransitionTo(next OwnershipStatus) bool {
	switch next {
	case OwnershipAnalysing:
		return s == OwnershipPending || s == OwnershipRejected
	case OwnershipApproved, OwnershipRejected:
		return s == OwnershipAnalysing
	}
	return false
}

// OwnershipRequest is a user's request to adopt an animal.
type OwnershipRequest struct {
	ID        string          `json:"id"`
	AnimalID  string          `json:"animal_id"`
	UserID    string          `json:"user_id"`
	Status    OwnershipStatus `json:"status"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FosteringStatus is the state of a foster-care relationship.
type FosteringStatus string

const (
	FosteringActive FosteringStatus = "active"
	FosteringEnded  FosteringStatus = "ended"
)

func (s FosteringStatus) Valid() bool {
	return s == FosteringActive || s == FosteringEnded
}

// Fostering is a foster-care relationship between a user and an animal.
type Fostering struct {
	ID        string          `json:"id"`
	AnimalID  string          `json:"animal_id"`
	UserID    string          `json:"user_id"`
	Status    FosteringStatus `json:"status"`
	StartedAt time.Time       `json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at,omitempty"`
}

// Favorite marks an animal a user wants to keep an eye on.
type Favorite struct {
	UserID    string    `json:"user_id"`
	AnimalID  string    `json:"animal_id"`
	CreatedAt time.Time `json:"created_at"`
}
