package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

// SessionConfig defines how access tokens issued by the auth provider are verified
type SessionConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	CookieName string
}

// Claims defines the access token content we rely on
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller of a request
type Identity struct {
	UserID string  `json:"id"`
	Email  string  `json:"email,omitempty"`
	Claims *Claims `json:"-"`
}

// SessionResolver turns request credentials into an Identity
type SessionResolver struct {
	config SessionConfig
}

// NewSessionResolver creates a new session resolver
func NewSessionResolver(config SessionConfig) *SessionResolver {
	return &SessionResolver{config: config}
}

// Resolve returns the caller's identity. A missing, malformed, expired or forged
// token yields (nil, nil); an error is returned only when verification itself
// cannot run.
func (s *SessionResolver) Resolve(r *http.Request) (*Identity, error) {
	if s.config.Secret == "" {
		return nil, apperrors.ErrSessionMisconfigured
	}

	token := s.tokenFromRequest(r)
	if token == "" {
		return nil, nil
	}

	claims, err := s.VerifyToken(token)
	if err != nil {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Ignoring unusable access token")
		return nil, nil
	}

	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Claims: claims,
	}, nil
}

// tokenFromRequest prefers the Authorization header and falls back to the session cookie
func (s *SessionResolver) tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := ExtractBearerToken(header); err == nil {
			return token
		}
	}

	if s.config.CookieName != "" {
		if cookie, err := r.Cookie(s.config.CookieName); err == nil {
			return strings.TrimSpace(cookie.Value)
		}
	}

	return ""
}

// VerifyToken validates the signature and registered claims of an access token
func (s *SessionResolver) VerifyToken(tokenString string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.config.Issuer))
	}
	if s.config.Audience != "" {
		options = append(options, jwt.WithAudience(s.config.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// IssueToken signs an access token the same way the auth provider does
func (s *SessionResolver) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	if s.config.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.config.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", apperrors.ErrTokenInvalid
	}
	token := strings.TrimSpace(authHeader[len(prefix):])
	if token == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return token, nil
}
