package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
)

// OnboardingController handles mentor onboarding
type OnboardingController struct {
	onboardingService services.OnboardingService
}

// NewOnboardingController creates a new onboarding controller
func NewOnboardingController(onboardingService services.OnboardingService) *OnboardingController {
	return &OnboardingController{
		onboardingService: onboardingService,
	}
}

// SubmitMentor saves the mentor onboarding form
// @Summary Mentor onboarding
// @Description Saves the mentor row and promotes the profile to mentor. On partial failure "details" names the failed step; resubmitting is safe.
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MentorOnboardingRequest true "Onboarding form"
// @Success 200 {object} dto.SuccessResponse "Onboarding completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "A step failed"
// @Router /onboarding/mentor [post]
func (c *OnboardingController) SubmitMentor(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	var req dto.MentorOnboardingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.onboardingService.SubmitMentor(ctx.Request.Context(), identity.UserID, req); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to complete mentor onboarding")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}
