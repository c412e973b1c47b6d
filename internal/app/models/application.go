package models

import (
	"time"
)

// ApplicationStatus is the review state of a mentor application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsOutstanding reports whether the status blocks a new application
func (s ApplicationStatus) IsOutstanding() bool {
	return s == ApplicationPending || s == ApplicationApproved
}

// MentorApplication defines the model based on the 'mentor_applications' table
type MentorApplication struct {
	ID         string            `json:"id" db:"id"`
	UserID     string            `json:"user_id" db:"user_id"`
	Status     ApplicationStatus `json:"status" db:"status" example:"pending"`
	Motivation *string           `json:"motivation" db:"motivation"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}
