package dto

import "github.com/yigit/mentorly/internal/app/models"

// MentorDashboardResponse is the signed-in mentor's own view
type MentorDashboardResponse struct {
	User              UserInfo                  `json:"user"`
	Profile           *models.Profile           `json:"profile"`
	Mentor            *models.Mentor            `json:"mentor"`
	AvailabilitySlots []models.AvailabilitySlot `json:"availabilitySlots"`
	Bookings          []models.Booking          `json:"bookings"`
}

// CheckApplicationResponse reports whether the caller already applied
type CheckApplicationResponse struct {
	HasPendingApplication bool                      `json:"hasPendingApplication" example:"true"`
	Status                *models.ApplicationStatus `json:"status" example:"pending"`
}

// MentorApplicationRequest is the body of a new mentor application
type MentorApplicationRequest struct {
	Motivation *string `json:"motivation" binding:"omitempty,max=4000"`
}

// MentorApplicationResponse wraps a created application
type MentorApplicationResponse struct {
	Success     bool                      `json:"success" example:"true"`
	Application *models.MentorApplication `json:"application"`
}
