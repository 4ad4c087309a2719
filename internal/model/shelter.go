package model

import "time"

// Shelter is the organization housing animals. OpensAt and ClosesAt are
// minutes from midnight (e.g. 540 = 09:00) and constrain when activity
// slots may be scheduled.
type Shelter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	AdminID   string    `json:"admin_id"`
	OpensAt   int       `json:"opens_at"`
	ClosesAt  int       `json:"closes_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Breed is a catalogue entry animals reference.
type Breed struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     Species `json:"species"`
	Description string  `json:"description"`
}

// User is a platform account referenced as adopter, foster carer or
// shelter admin. Authentication itself happens upstream.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
