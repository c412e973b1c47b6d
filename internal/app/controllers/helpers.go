package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/middleware"
	"github.com/yigit/mentorly/internal/pkg/auth"
)

// requireIdentity returns the caller, answering 401 when the route was mounted
// without RequireUser and no identity is present
func requireIdentity(ctx *gin.Context) (*auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return nil, false
	}
	return identity, true
}
