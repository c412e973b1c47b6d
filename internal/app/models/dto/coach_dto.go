package dto

import "github.com/yigit/mentorly/internal/app/models"

// CoachCard is a mentor as shown in the public listing
type CoachCard struct {
	ID              string   `json:"id"`
	FullName        *string  `json:"full_name" example:"Jane Doe"`
	AvatarURL       *string  `json:"avatar_url"`
	Initials        string   `json:"initials" example:"JD"`
	CurrentTitle    string   `json:"current_title" example:"Staff Engineer"`
	CurrentCompany  string   `json:"current_company" example:"Acme"`
	YearsExperience int      `json:"years_experience" example:"8"`
	FocusAreas      []string `json:"focus_areas"`
	AlumniSchool    string   `json:"alumni_school"`
	PriceCents      *int64   `json:"price_cents" example:"4500"`
	HourlyRate      string   `json:"hourlyRate" example:"$45"`
}

// NewCoachCard builds a listing card from a joined mentor row
func NewCoachCard(m models.MentorWithProfile) CoachCard {
	focusAreas := m.FocusAreas
	if focusAreas == nil {
		focusAreas = []string{}
	}
	return CoachCard{
		ID:              m.ID,
		FullName:        m.FullName,
		AvatarURL:       m.AvatarURL,
		Initials:        models.MentorInitials(m.FullName),
		CurrentTitle:    m.CurrentTitle,
		CurrentCompany:  m.CurrentCompany,
		YearsExperience: m.YearsExperience,
		FocusAreas:      focusAreas,
		AlumniSchool:    m.AlumniSchool,
		PriceCents:      m.PriceCents,
		HourlyRate:      models.FormatHourlyRate(m.PriceCents),
	}
}

// CoachListResponse is the public coach listing
type CoachListResponse struct {
	Mentors []CoachCard `json:"mentors"`
	Count   int         `json:"count" example:"1"`
}
