package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/pkg/auth"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

// Context keys set by Session
const (
	ContextIdentityKey     = "identity"
	ContextUserIDKey       = "userID"
	ContextSessionErrorKey = "sessionError"
)

// AuthMiddleware attaches the caller's identity to requests
type AuthMiddleware struct {
	resolver *auth.SessionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver *auth.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// Session resolves the caller on every request. Anonymous requests continue
// without an identity. A resolver failure also continues anonymously; it is
// kept on the context so RequireUser can answer 500 instead of 401.
func (m *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.resolver.Resolve(c.Request)
		if err != nil {
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Session resolution failed")
			c.Set(ContextSessionErrorKey, err)
			c.Next()
			return
		}

		if identity != nil {
			c.Set(ContextIdentityKey, identity)
			c.Set(ContextUserIDKey, identity.UserID)
		}

		c.Next()
	}
}

// RequireUser rejects anonymous requests with 401, or 500 when the session
// could not be resolved
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, failed := c.Get(ContextSessionErrorKey); failed {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
			return
		}
		if _, ok := IdentityFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Session
func IdentityFrom(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok && identity != nil
}
