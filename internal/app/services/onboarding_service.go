package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/helpers"
)

// Onboarding steps reported on partial failure
const (
	StepMentorUpsert  = "mentor_upsert"
	StepProfileUpdate = "profile_update"
)

// OnboardingService turns a user into a mentor
type OnboardingService interface {
	SubmitMentor(ctx context.Context, userID string, req dto.MentorOnboardingRequest) error
}

type onboardingServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(gateway *db.Gateway, logger zerolog.Logger) OnboardingService {
	return &onboardingServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// SubmitMentor saves the mentor row and then promotes the profile. The two
// steps commit separately: when the second fails the mentor row stays saved
// and resubmitting the form is safe.
func (s *onboardingServiceImpl) SubmitMentor(ctx context.Context, userID string, req dto.MentorOnboardingRequest) error {
	if req.PriceDollars.IsNegative() {
		return apperrors.ErrNegativePrice
	}

	cents, err := helpers.DollarsToCents(*req.PriceDollars)
	if err != nil {
		return apperrors.ErrPriceOutOfRange
	}

	now := helpers.NowUTC()
	mentor := &models.Mentor{
		ID:              userID,
		CurrentTitle:    strings.TrimSpace(req.CurrentTitle),
		CurrentCompany:  strings.TrimSpace(req.CurrentCompany),
		YearsExperience: *req.YearsExperience,
		LinkedinURL:     strings.TrimSpace(req.LinkedinURL),
		FocusAreas:      cleanFocusAreas(req.FocusAreas),
		PriceCents:      &cents,
		AlumniSchool:    strings.TrimSpace(req.AlumniSchool),
		IsActive:        true,
		Status:          models.MentorStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	client := s.gateway.As(userID)

	err = client.Run(ctx, func(q db.Querier) error {
		return repositories.NewMentorRepository(q).Upsert(ctx, mentor)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Mentor onboarding failed saving mentor row")
		return apperrors.NewStepError(StepMentorUpsert, "Failed to save mentor profile", err)
	}

	err = client.Run(ctx, func(q db.Querier) error {
		return repositories.NewProfileRepository(q).PromoteToMentor(ctx, userID, req.AvatarURL, now)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Mentor onboarding failed updating profile; mentor row kept")
		return apperrors.NewStepError(StepProfileUpdate, "Failed to update profile", err)
	}

	s.logger.Info().Str("userID", userID).Int64("priceCents", cents).Msg("Mentor onboarding completed")
	return nil
}

func cleanFocusAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	for _, area := range areas {
		if area = strings.TrimSpace(area); area != "" {
			out = append(out, area)
		}
	}
	return out
}
