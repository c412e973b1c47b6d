package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

// ProfileController handles profile writes
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new profile controller
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// CreateProfile creates the caller's profile if it does not exist yet
// @Summary Create profile
// @Description Idempotent: an existing profile is left untouched and the call still succeeds
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfileRequest false "Initial profile fields"
// @Success 200 {object} dto.SuccessResponse "Profile exists"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create profile, with details"
// @Router /profile/create [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	var req dto.CreateProfileRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	if err := c.profileService.Create(ctx.Request.Context(), identity.UserID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			middleware.HandleAPIError(ctx, err, "Failed to create profile")
			return
		}
		logger.Error().Err(err).Str("userID", identity.UserID).Msg("Profile creation failed")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create profile").WithDetails(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}

// UpdateProfile updates the caller's display fields
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=models.Profile} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [patch]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, err := c.profileService.Update(ctx.Request.Context(), identity.UserID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update profile")
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: profile})
}

// UpdateRole records the role the caller is adopting
// @Summary Select role
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRoleRequest true "Desired role (student or mentor)"
// @Success 200 {object} dto.SuccessResponse "Role saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/update-role [post]
func (c *ProfileController) UpdateRole(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.profileService.UpdateRole(ctx.Request.Context(), identity.UserID, req.DesiredRole); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update role")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}

// CompleteOnboarding marks the caller's onboarding as finished
// @Summary Complete onboarding
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse "Onboarding completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/complete-onboarding [post]
func (c *ProfileController) CompleteOnboarding(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	if err := c.profileService.CompleteOnboarding(ctx.Request.Context(), identity.UserID); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to complete onboarding")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}
