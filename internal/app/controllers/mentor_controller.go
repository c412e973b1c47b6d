package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
)

// MentorController handles mentor dashboard and applications
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new mentor controller
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// GetDashboard returns the caller's mentor view
// @Summary Mentor dashboard
// @Description Profile, mentor row, availability slots and bookings of the signed-in mentor
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MentorDashboardResponse "Mentor dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a mentor or mentor inactive"
// @Failure 404 {object} dto.ErrorResponse "Profile or mentor row not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/me [get]
func (c *MentorController) GetDashboard(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	dashboard, err := c.mentorService.GetDashboard(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to load mentor dashboard")
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// CheckApplication reports whether the caller has an outstanding application
// @Summary Check mentor application
// @Description Reports a pending or approved application of the caller. Never fails; anonymous callers have none.
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CheckApplicationResponse "Application status"
// @Router /mentor/check-application [get]
func (c *MentorController) CheckApplication(ctx *gin.Context) {
	var userID string
	if identity, ok := middleware.IdentityFrom(ctx); ok {
		userID = identity.UserID
	}

	ctx.JSON(http.StatusOK, c.mentorService.CheckApplication(ctx.Request.Context(), userID))
}

// Apply files a mentor application
// @Summary Apply as mentor
// @Description Create a pending mentor application unless one is already pending or approved
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MentorApplicationRequest false "Application"
// @Success 201 {object} dto.MentorApplicationResponse "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Application already pending or approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/applications [post]
func (c *MentorController) Apply(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	var req dto.MentorApplicationRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	application, err := c.mentorService.Apply(ctx.Request.Context(), identity.UserID, req.Motivation)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to submit mentor application")
		return
	}

	ctx.JSON(http.StatusCreated, dto.MentorApplicationResponse{
		Success:     true,
		Application: application,
	})
}
