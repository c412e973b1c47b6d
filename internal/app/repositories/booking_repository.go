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

var bookingColumns = []string{
	"id", "student_id", "mentor_id", "status", "scheduled_at",
	"decline_reason", "cancel_reason", "created_at", "updated_at",
}

// BookingRepository reads bookings. State changes go through the booking procedures.
type BookingRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(q db.Querier) *BookingRepository {
	return &BookingRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// ListForParticipant returns bookings where userID is the student or the mentor
func (r *BookingRepository) ListForParticipant(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.list(ctx, squirrel.Or{
		squirrel.Eq{"student_id": userID},
		squirrel.Eq{"mentor_id": userID},
	})
}

// ListForMentor returns the bookings of a mentor
func (r *BookingRepository) ListForMentor(ctx context.Context, mentorID string) ([]models.Booking, error) {
	return r.list(ctx, squirrel.Eq{"mentor_id": mentorID})
}

func (r *BookingRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Booking, error) {
	sql, args, err := r.sb.Select(bookingColumns...).
		From("bookings").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list bookings SQL")
		return nil, fmt.Errorf("failed to build list bookings query: %w", err)
	}

	bookings := []models.Booking{}
	if err := pgxscan.Select(ctx, r.db, &bookings, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing list bookings query")
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}

	return bookings, nil
}
