package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
)

// CoachService serves the public coach listing
type CoachService interface {
	ListCoaches(ctx context.Context) ([]dto.CoachCard, error)
}

type coachServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewCoachService creates a new CoachService
func NewCoachService(gateway *db.Gateway, logger zerolog.Logger) CoachService {
	return &coachServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// ListCoaches returns a card for every publicly listed mentor
func (s *coachServiceImpl) ListCoaches(ctx context.Context) ([]dto.CoachCard, error) {
	var mentors []models.MentorWithProfile
	err := s.gateway.Anonymous().Run(ctx, func(q db.Querier) error {
		var err error
		mentors, err = repositories.NewMentorRepository(q).ListActiveWithProfiles(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing coaches: %w", err)
	}

	cards := make([]dto.CoachCard, 0, len(mentors))
	for _, mentor := range mentors {
		if !mentor.IsListed() {
			continue
		}
		cards = append(cards, dto.NewCoachCard(mentor))
	}

	s.logger.Debug().Int("count", len(cards)).Msg("Listed coaches")
	return cards, nil
}
