package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

// AvailabilityRepository reads mentor availability slots
type AvailabilityRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(q db.Querier) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// ListByMentor returns a mentor's slots in chronological order
func (r *AvailabilityRepository) ListByMentor(ctx context.Context, mentorID string) ([]models.AvailabilitySlot, error) {
	sql, args, err := r.sb.Select("id", "mentor_id", "starts_at", "ends_at", "is_booked").
		From("availability_slots").
		Where(squirrel.Eq{"mentor_id": mentorID}).
		OrderBy("starts_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list availability SQL")
		return nil, fmt.Errorf("failed to build list availability query: %w", err)
	}

	slots := []models.AvailabilitySlot{}
	if err := pgxscan.Select(ctx, r.db, &slots, sql, args...); err != nil {
		logger.Error().Err(err).Str("mentorID", mentorID).Msg("Error executing list availability query")
		return nil, fmt.Errorf("error listing availability: %w", err)
	}

	return slots, nil
}
