package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/middleware"
)

// UserController serves the current user aggregate
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe returns everything the client needs about the caller
// @Summary Current user
// @Description Returns profile, student row, mentor row, bookings and normalized roles. Anonymous callers get {"user": null}.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentUserResponse "Current user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, dto.AnonymousUserResponse{User: nil})
		return
	}

	ctx.JSON(http.StatusOK, c.userService.GetCurrentUser(ctx.Request.Context(), identity))
}
