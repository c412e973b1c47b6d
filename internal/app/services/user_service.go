package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/auth"
)

// UserService assembles the current user's aggregate view
type UserService interface {
	GetCurrentUser(ctx context.Context, identity *auth.Identity) *dto.CurrentUserResponse
}

type userServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(gateway *db.Gateway, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// GetCurrentUser loads profile, student row, mentor row and bookings as four
// independent reads. A part that is absent or fails to load is left empty.
func (s *userServiceImpl) GetCurrentUser(ctx context.Context, identity *auth.Identity) *dto.CurrentUserResponse {
	client := s.gateway.As(identity.UserID)
	response := &dto.CurrentUserResponse{
		User:     &dto.UserInfo{ID: identity.UserID, Email: identity.Email},
		Bookings: []models.Booking{},
	}

	err := client.Run(ctx, func(q db.Querier) error {
		var err error
		response.Profile, err = repositories.NewProfileRepository(q).GetByID(ctx, identity.UserID)
		return err
	})
	s.logPartial(err, "profile", identity.UserID)

	err = client.Run(ctx, func(q db.Querier) error {
		var err error
		response.Student, err = repositories.NewStudentRepository(q).GetByID(ctx, identity.UserID)
		return err
	})
	s.logPartial(err, "student", identity.UserID)

	err = client.Run(ctx, func(q db.Querier) error {
		var err error
		response.Mentor, err = repositories.NewMentorRepository(q).GetByID(ctx, identity.UserID)
		return err
	})
	s.logPartial(err, "mentor", identity.UserID)

	err = client.Run(ctx, func(q db.Querier) error {
		bookings, err := repositories.NewBookingRepository(q).ListForParticipant(ctx, identity.UserID)
		if err == nil {
			response.Bookings = bookings
		}
		return err
	})
	s.logPartial(err, "bookings", identity.UserID)

	response.Roles = models.UserRoles(response.Profile)
	if primary, ok := models.PrimaryRole(response.Profile); ok {
		response.PrimaryRole = &primary
	}
	response.IsMultiRole = models.IsMultiRole(response.Profile)

	return response
}

func (s *userServiceImpl) logPartial(err error, part, userID string) {
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrResourceNotFound):
		s.logger.Debug().Str("part", part).Str("userID", userID).Msg("Current user part absent")
	default:
		s.logger.Error().Err(err).Str("part", part).Str("userID", userID).Msg("Failed to load current user part")
	}
}
