package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
)

// CoachController serves the public coach listing
type CoachController struct {
	coachService services.CoachService
}

// NewCoachController creates a new coach controller
func NewCoachController(coachService services.CoachService) *CoachController {
	return &CoachController{
		coachService: coachService,
	}
}

// ListCoaches lists publicly visible mentors
// @Summary List coaches
// @Description List every active mentor with display fields, formatted hourly rate and initials
// @Tags coaches
// @Produce json
// @Success 200 {object} dto.CoachListResponse "Coaches"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches [get]
func (c *CoachController) ListCoaches(ctx *gin.Context) {
	cards, err := c.coachService.ListCoaches(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch coaches")
		return
	}

	ctx.JSON(http.StatusOK, dto.CoachListResponse{
		Mentors: cards,
		Count:   len(cards),
	})
}
