package models

import (
	"time"
)

// AvailabilitySlot defines the model based on the 'availability_slots' table
type AvailabilitySlot struct {
	ID       string    `json:"id" db:"id"`
	MentorID string    `json:"mentor_id" db:"mentor_id"`
	StartsAt time.Time `json:"starts_at" db:"starts_at"`
	EndsAt   time.Time `json:"ends_at" db:"ends_at"`
	IsBooked bool      `json:"is_booked" db:"is_booked"`
}
