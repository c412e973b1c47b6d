package models

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking defines the booking model based on the 'bookings' table.
// Status changes only through the booking procedures.
type Booking struct {
	ID            string        `json:"id" db:"id"`
	StudentID     string        `json:"student_id" db:"student_id"`
	MentorID      string        `json:"mentor_id" db:"mentor_id"`
	Status        BookingStatus `json:"status" db:"status" example:"pending"`
	ScheduledAt   *time.Time    `json:"scheduled_at" db:"scheduled_at"`
	DeclineReason *string       `json:"decline_reason" db:"decline_reason"`
	CancelReason  *string       `json:"cancel_reason" db:"cancel_reason"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
