package model

import "time"

// ActivityStatus is the state of a scheduled visit.
type ActivityStatus string

const (
	ActivityActive    ActivityStatus = "active"
	ActivityCancelled ActivityStatus = "cancelled"
	ActivityCompleted ActivityStatus = "completed"
)

func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityActive, ActivityCancelled, ActivityCompleted:
		return true
	}
	return false
}

// ActivityKind distinguishes plain visits from post-adoption and
// fostering visits, which carry extra eligibility guards.
type ActivityKind string

const (
	ActivityVisit     ActivityKind = "visit"
	ActivityOwnership ActivityKind = "ownership"
	ActivityFostering ActivityKind = "fostering"
)

func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityVisit, ActivityOwnership, ActivityFostering:
		return true
	}
	return false
}

// SlotStatus is the state of a shelter's published time slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
)

func (s SlotStatus) Valid() bool {
	return s == SlotAvailable || s == SlotReserved
}

// ActivitySlot is a bookable window published by a shelter.
// Its status tracks the booking activity in lockstep: reserved while the
// activity is active or completed, available otherwise.
type ActivitySlot struct {
	ID        string     `json:"id"`
	ShelterID string     `json:"shelter_id"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	Status    SlotStatus `json:"status"`
}

// Activity is a scheduled interaction between a user and an animal,
// occupying one slot.
type Activity struct {
	ID        string         `json:"id"`
	AnimalID  string         `json:"animal_id"`
	UserID    string         `json:"user_id"`
	SlotID    string         `json:"slot_id"`
	Kind      ActivityKind   `json:"kind"`
	Status    ActivityStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
