package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/helpers"
)

// ProfileService handles profile writes
type ProfileService interface {
	Create(ctx context.Context, userID string, req dto.CreateProfileRequest) error
	Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error)
	UpdateRole(ctx context.Context, userID, desiredRole string) error
	CompleteOnboarding(ctx context.Context, userID string) error
}

type profileServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(gateway *db.Gateway, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Create inserts the caller's profile. An existing profile is left as is.
func (s *profileServiceImpl) Create(ctx context.Context, userID string, req dto.CreateProfileRequest) error {
	desired := string(models.RoleStudent)
	if req.DesiredRole != nil {
		role, ok := models.ParseRole(*req.DesiredRole)
		if !ok {
			return apperrors.ErrInvalidDesiredRole
		}
		desired = string(role)
	}

	now := helpers.NowUTC()
	profile := &models.Profile{
		ID:          userID,
		FullName:    req.FullName,
		DesiredRole: &desired,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created bool
	err := s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		var err error
		created, err = repositories.NewProfileRepository(q).CreateIfAbsent(ctx, profile)
		return err
	})
	if err != nil {
		return fmt.Errorf("error creating profile: %w", err)
	}

	if created {
		s.logger.Info().Str("userID", userID).Str("desiredRole", desired).Msg("Profile created")
	} else {
		s.logger.Debug().Str("userID", userID).Msg("Profile already exists")
	}
	return nil
}

// Update changes the supplied display fields
func (s *profileServiceImpl) Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("At least one of full_name or avatar_url is required")
	}

	var profile *models.Profile
	err := s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		var err error
		profile, err = repositories.NewProfileRepository(q).Update(ctx, userID, req.FullName, req.AvatarURL, helpers.NowUTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateRole records the role the caller is adopting
func (s *profileServiceImpl) UpdateRole(ctx context.Context, userID, desiredRole string) error {
	role, ok := models.ParseRole(desiredRole)
	if !ok {
		return apperrors.ErrInvalidDesiredRole
	}

	return s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		return repositories.NewProfileRepository(q).UpdateDesiredRole(ctx, userID, role, helpers.NowUTC())
	})
}

// CompleteOnboarding flags the caller's onboarding as finished
func (s *profileServiceImpl) CompleteOnboarding(ctx context.Context, userID string) error {
	return s.gateway.As(userID).Run(ctx, func(q db.Querier) error {
		return repositories.NewProfileRepository(q).CompleteOnboarding(ctx, userID, helpers.NowUTC())
	})
}
