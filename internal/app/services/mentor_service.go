package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/auth"
	"github.com/yigit/mentorly/internal/pkg/helpers"
)

// MentorService covers the mentor dashboard and mentor applications
type MentorService interface {
	GetDashboard(ctx context.Context, identity *auth.Identity) (*dto.MentorDashboardResponse, error)
	CheckApplication(ctx context.Context, userID string) dto.CheckApplicationResponse
	Apply(ctx context.Context, userID string, motivation *string) (*models.MentorApplication, error)
}

type mentorServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewMentorService creates a new MentorService
func NewMentorService(gateway *db.Gateway, logger zerolog.Logger) MentorService {
	return &mentorServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// GetDashboard loads the caller's mentor view. The caller must hold the mentor
// role and own an active mentor row.
func (s *mentorServiceImpl) GetDashboard(ctx context.Context, identity *auth.Identity) (*dto.MentorDashboardResponse, error) {
	response := &dto.MentorDashboardResponse{
		User: dto.UserInfo{ID: identity.UserID, Email: identity.Email},
	}

	err := s.gateway.As(identity.UserID).Run(ctx, func(q db.Querier) error {
		repos := repositories.New(q)

		profile, err := repos.Profiles.GetByID(ctx, identity.UserID)
		if err != nil {
			return err
		}
		if !models.HasRole(profile, models.RoleMentor) {
			return apperrors.ErrNotMentor
		}

		mentor, err := repos.Mentors.GetByID(ctx, identity.UserID)
		if err != nil {
			return err
		}
		if !mentor.IsActive {
			return apperrors.ErrMentorInactive
		}

		slots, err := repos.Availability.ListByMentor(ctx, identity.UserID)
		if err != nil {
			return err
		}
		bookings, err := repos.Bookings.ListForMentor(ctx, identity.UserID)
		if err != nil {
			return err
		}

		response.Profile = profile
		response.Mentor = mentor
		response.AvailabilitySlots = slots
		response.Bookings = bookings
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// CheckApplication reports the caller's outstanding application. Anonymous
// callers and lookup failures both read as "no application".
func (s *mentorServiceImpl) CheckApplication(ctx context.Context, userID string) dto.CheckApplicationResponse {
	none := dto.CheckApplicationResponse{}
	if userID == "" {
		return none
	}

	var application *models.MentorApplication
	err := s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		var err error
		application, err = repositories.NewApplicationRepository(q).FindOutstanding(ctx, userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Err(err).Str("userID", userID).Msg("Failed to check mentor application")
		}
		return none
	}

	status := application.Status
	return dto.CheckApplicationResponse{
		HasPendingApplication: true,
		Status:                &status,
	}
}

// Apply files a new mentor application unless one is pending or approved
func (s *mentorServiceImpl) Apply(ctx context.Context, userID string, motivation *string) (*models.MentorApplication, error) {
	application := &models.MentorApplication{
		ID:         uuid.NewString(),
		UserID:     userID,
		Status:     models.ApplicationPending,
		Motivation: motivation,
		CreatedAt:  helpers.NowUTC(),
	}

	err := s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		repo := repositories.NewApplicationRepository(q)
		_, err := repo.FindOutstanding(ctx, userID)
		switch {
		case err == nil:
			return apperrors.ErrApplicationExists
		case !errors.Is(err, apperrors.ErrResourceNotFound):
			return err
		}
		return repo.Create(ctx, application)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating mentor application: %w", err)
	}

	return application, nil
}
