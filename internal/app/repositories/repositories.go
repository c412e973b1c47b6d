package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/mentorly/internal/db"
)

// Repositories holds all the repository instances bound to one unit of work
type Repositories struct {
	Profiles     *ProfileRepository
	Students     *StudentRepository
	Mentors      *MentorRepository
	Bookings     *BookingRepository
	Applications *ApplicationRepository
	Availability *AvailabilityRepository
}

// New initializes all repositories over q, usually the transaction of a gateway unit
func New(q db.Querier) *Repositories {
	return &Repositories{
		Profiles:     NewProfileRepository(q),
		Students:     NewStudentRepository(q),
		Mentors:      NewMentorRepository(q),
		Bookings:     NewBookingRepository(q),
		Applications: NewApplicationRepository(q),
		Availability: NewAvailabilityRepository(q),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
