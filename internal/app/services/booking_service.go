package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/db"
)

// Booking procedures
const (
	procApproveBooking = "approve_booking"
	procDeclineBooking = "decline_booking"
	procCancelBooking  = "cancel_booking"
)

// BookingService relays booking transitions to their stored procedures.
// The procedures decide whether the caller may act and whether the booking is
// still pending; this service adds no checks of its own.
type BookingService interface {
	Approve(ctx context.Context, mentorID, bookingID string) (json.RawMessage, error)
	Decline(ctx context.Context, mentorID, bookingID string, reason *string) (json.RawMessage, error)
	Cancel(ctx context.Context, studentID, bookingID string, reason *string) (json.RawMessage, error)
}

type bookingServiceImpl struct {
	gateway *db.Gateway
	logger  zerolog.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(gateway *db.Gateway, logger zerolog.Logger) BookingService {
	return &bookingServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *bookingServiceImpl) Approve(ctx context.Context, mentorID, bookingID string) (json.RawMessage, error) {
	return s.transition(ctx, mentorID, procApproveBooking, map[string]any{
		"p_booking_id": bookingID,
		"p_mentor_id":  mentorID,
	})
}

func (s *bookingServiceImpl) Decline(ctx context.Context, mentorID, bookingID string, reason *string) (json.RawMessage, error) {
	return s.transition(ctx, mentorID, procDeclineBooking, map[string]any{
		"p_booking_id": bookingID,
		"p_mentor_id":  mentorID,
		"p_reason":     nullable(reason),
	})
}

func (s *bookingServiceImpl) Cancel(ctx context.Context, studentID, bookingID string, reason *string) (json.RawMessage, error) {
	return s.transition(ctx, studentID, procCancelBooking, map[string]any{
		"p_booking_id": bookingID,
		"p_student_id": studentID,
		"p_reason":     nullable(reason),
	})
}

func (s *bookingServiceImpl) transition(ctx context.Context, actorID, procedure string, params map[string]any) (json.RawMessage, error) {
	result, err := s.gateway.As(actorID).Call(ctx, procedure, params)
	if err != nil {
		s.logger.Error().Err(err).Str("procedure", procedure).Str("actorID", actorID).Msg("Booking procedure call failed")
		return nil, err
	}

	if err := result.Err(); err != nil {
		s.logger.Info().Str("procedure", procedure).Str("actorID", actorID).Str("reason", result.Error).Msg("Booking transition rejected")
		return nil, err
	}

	return result.Field("booking"), nil
}
