package models

import (
	"time"
)

// Profile defines the profile model based on the 'profiles' table.
// Role and Roles are raw storage; read role membership through UserRoles.
type Profile struct {
	ID                 string    `json:"id" db:"id" example:"5f1c1f9e-3c4d-4b8e-9a47-0c1f8f9b2a11"`
	Role               *string   `json:"role" db:"role" example:"student"`             // Legacy single role (nullable)
	Roles              *[]string `json:"roles" db:"roles"`                             // Multi-role list (nullable)
	OnboardingComplete bool      `json:"onboarding_complete" db:"onboarding_complete"` // Whether onboarding finished
	FullName           *string   `json:"full_name" db:"full_name" example:"Jane Doe"`
	AvatarURL          *string   `json:"avatar_url" db:"avatar_url" example:"https://cdn.mentorly.dev/avatars/jane.png"`
	DesiredRole        *string   `json:"desired_role" db:"desired_role" example:"mentor"` // Role the user is adopting
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
