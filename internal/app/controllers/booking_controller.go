package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
)

// BookingController handles booking transitions
type BookingController struct {
	bookingService services.BookingService
}

// NewBookingController creates a new booking controller
func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// bookingID reads and validates the booking ID path parameter
func bookingID(ctx *gin.Context) (string, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid booking ID"))
		return "", false
	}
	return id.String(), true
}

func respondTransition(ctx *gin.Context, booking json.RawMessage, err error, fallback string) {
	if err != nil {
		middleware.HandleAPIError(ctx, err, fallback)
		return
	}
	ctx.JSON(http.StatusOK, dto.BookingTransitionResponse{
		Success: true,
		Booking: booking,
	})
}

// Approve approves a pending booking
// @Summary Approve booking
// @Description Mentor only. Approve a pending booking as its mentor. The booking procedure checks that the caller is the booking's mentor; other callers get 400 with its reason.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID" Format(uuid)
// @Success 200 {object} dto.BookingTransitionResponse "Booking approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID, booking not pending, or caller is not the booking's mentor"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id}/approve [post]
func (c *BookingController) Approve(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := bookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.bookingService.Approve(ctx.Request.Context(), identity.UserID, id)
	respondTransition(ctx, booking, err, "Failed to approve booking")
}

// Decline declines a pending booking
// @Summary Decline booking
// @Description Mentor only. Decline a pending booking as its mentor, optionally with a reason. The booking procedure checks that the caller is the booking's mentor; other callers get 400 with its reason.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID" Format(uuid)
// @Param request body dto.BookingTransitionRequest false "Decline reason"
// @Success 200 {object} dto.BookingTransitionResponse "Booking declined"
// @Failure 400 {object} dto.ErrorResponse "Invalid input, booking not pending, or caller is not the booking's mentor"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id}/decline [post]
func (c *BookingController) Decline(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := bookingID(ctx)
	if !ok {
		return
	}
	var req dto.BookingTransitionRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	booking, err := c.bookingService.Decline(ctx.Request.Context(), identity.UserID, id, req.ReasonValue())
	respondTransition(ctx, booking, err, "Failed to decline booking")
}

// Cancel cancels a booking as its student
// @Summary Cancel booking
// @Description Cancel one of the caller's bookings, optionally with a reason
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID" Format(uuid)
// @Param request body dto.BookingTransitionRequest false "Cancel reason"
// @Success 200 {object} dto.BookingTransitionResponse "Booking cancelled"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or booking cannot be cancelled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id}/cancel [post]
func (c *BookingController) Cancel(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := bookingID(ctx)
	if !ok {
		return
	}
	var req dto.BookingTransitionRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	booking, err := c.bookingService.Cancel(ctx.Request.Context(), identity.UserID, id, req.ReasonValue())
	respondTransition(ctx, booking, err, "Failed to cancel booking")
}
