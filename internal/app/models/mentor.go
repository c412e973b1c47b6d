package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MentorStatusActive is the lifecycle status of a publicly listed mentor
const MentorStatusActive = "active"

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID              string    `json:"id" db:"id"`
	CurrentTitle    string    `json:"current_title" db:"current_title" example:"Staff Engineer"`
	CurrentCompany  string    `json:"current_company" db:"current_company" example:"Acme"`
	YearsExperience int       `json:"years_experience" db:"years_experience" example:"8"`
	LinkedinURL     string    `json:"linkedin_url" db:"linkedin_url"`
	FocusAreas      []string  `json:"focus_areas" db:"focus_areas"`
	PriceCents      *int64    `json:"price_cents" db:"price_cents" example:"4500"` // Hourly price in cents, nil when unpriced
	AlumniSchool    string    `json:"alumni_school" db:"alumni_school"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	Status          string    `json:"status" db:"status" example:"active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsListed reports whether the mentor may appear in the public listing
func (m *Mentor) IsListed() bool {
	return m.IsActive && m.Status == MentorStatusActive
}

// MentorWithProfile is a mentor row joined with the owner's display fields
type MentorWithProfile struct {
	Mentor
	FullName  *string `json:"full_name" db:"full_name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
}

var ratePrinter = message.NewPrinter(language.English)

// FormatHourlyRate renders a cents price for display
func FormatHourlyRate(priceCents *int64) string {
	if priceCents == nil {
		return "Contact for pricing"
	}
	cents := *priceCents
	if cents%100 == 0 {
		return ratePrinter.Sprintf("$%d", cents/100)
	}
	return ratePrinter.Sprintf("$%.2f", float64(cents)/100)
}

// MentorInitials returns up to two uppercase initials of a display name
func MentorInitials(name *string) string {
	if name == nil {
		return "?"
	}
	words := strings.Fields(*name)
	if len(words) == 0 {
		return "?"
	}
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
