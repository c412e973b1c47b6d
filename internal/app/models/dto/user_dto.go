package dto

import "github.com/yigit/mentorly/internal/app/models"

// UserInfo is the authenticated identity echoed back to the client
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// CurrentUserResponse is the aggregate current-user payload
type CurrentUserResponse struct {
	User        *UserInfo        `json:"user"`
	Profile     *models.Profile  `json:"profile"`
	Student     *models.Student  `json:"student"`
	Mentor      *models.Mentor   `json:"mentor"`
	Bookings    []models.Booking `json:"bookings"`
	Roles       []models.Role    `json:"roles"`
	PrimaryRole *models.Role     `json:"primaryRole"`
	IsMultiRole bool             `json:"isMultiRole"`
}

// AnonymousUserResponse is returned to callers without a session
type AnonymousUserResponse struct {
	User *UserInfo `json:"user"`
}
