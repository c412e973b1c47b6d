package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/db"
)

// Services holds every application service
type Services struct {
	Bookings   BookingService
	Coaches    CoachService
	Users      UserService
	Mentors    MentorService
	Onboarding OnboardingService
	Profiles   ProfileService
}

// New builds all services over one gateway
func New(gateway *db.Gateway, logger zerolog.Logger) *Services {
	return &Services{
		Bookings:   NewBookingService(gateway, logger),
		Coaches:    NewCoachService(gateway, logger),
		Users:      NewUserService(gateway, logger),
		Mentors:    NewMentorService(gateway, logger),
		Onboarding: NewOnboardingService(gateway, logger),
		Profiles:   NewProfileService(gateway, logger),
	}
}

// nullable turns an optional string into a procedure argument
func nullable(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
