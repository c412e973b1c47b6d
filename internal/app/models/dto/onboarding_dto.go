package dto

import (
	"github.com/shopspring/decimal"
)

// MentorOnboardingRequest is the mentor onboarding form
type MentorOnboardingRequest struct {
	CurrentTitle    string           `json:"currentTitle" binding:"required,max=200" example:"Staff Engineer"`
	CurrentCompany  string           `json:"currentCompany" binding:"required,max=200" example:"Acme"`
	YearsExperience *int             `json:"yearsExperience" binding:"required,min=0,max=80" example:"8"`
	LinkedinURL     string           `json:"linkedinUrl" binding:"required,url" example:"https://www.linkedin.com/in/jane"`
	FocusAreas      []string         `json:"focusAreas" binding:"required,min=1,dive,required"`
	PriceDollars    *decimal.Decimal `json:"priceDollars" binding:"required" swaggertype:"number" example:"49.5"`
	AlumniSchool    string           `json:"alumniSchool" binding:"required,max=200" example:"State University"`
	AvatarURL       *string          `json:"avatarUrl" binding:"omitempty,url"`
}
