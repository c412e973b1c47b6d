package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
)

func newTestResolver() *SessionResolver {
	return NewSessionResolver(SessionConfig{
		Secret:     "test-secret",
		Issuer:     "https://auth.mentorly.test",
		Audience:   "authenticated",
		CookieName: "sb-access-token",
	})
}

func TestSessionResolver_Resolve(t *testing.T) {
	resolver := newTestResolver()
	t.Run("Should resolve identity from bearer header", func(t *testing.T) {
		token, err := resolver.IssueToken("user-1", "jane@example.com", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		identity, err := resolver.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, "user-1", identity.UserID)
		assert.Equal(t, "jane@example.com", identity.Email)
	})
	t.Run("Should resolve identity from session cookie", func(t *testing.T) {
		token, err := resolver.IssueToken("user-2", "", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: token})
		identity, err := resolver.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, "user-2", identity.UserID)
	})
	t.Run("Should treat missing credentials as no user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		identity, err := resolver.Resolve(req)
		assert.NoError(t, err)
		assert.Nil(t, identity)
	})
	t.Run("Should treat expired token as no user", func(t *testing.T) {
		token, err := resolver.IssueToken("user-1", "", -time.Minute)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		identity, err := resolver.Resolve(req)
		assert.NoError(t, err)
		assert.Nil(t, identity)
	})
	t.Run("Should treat token signed with another secret as no user", func(t *testing.T) {
		other := NewSessionResolver(SessionConfig{Secret: "other", Issuer: "https://auth.mentorly.test", Audience: "authenticated"})
		token, err := other.IssueToken("user-1", "", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		identity, err := resolver.Resolve(req)
		assert.NoError(t, err)
		assert.Nil(t, identity)
	})
	t.Run("Should fail when no secret is configured", func(t *testing.T) {
		broken := NewSessionResolver(SessionConfig{})
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		identity, err := broken.Resolve(req)
		assert.ErrorIs(t, err, apperrors.ErrSessionMisconfigured)
		assert.Nil(t, identity)
	})
}

func TestSessionResolver_VerifyToken(t *testing.T) {
	resolver := newTestResolver()
	t.Run("Should reject tokens without subject", func(t *testing.T) {
		token, err := resolver.IssueToken("", "", time.Hour)
		require.NoError(t, err)
		_, err = resolver.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
	t.Run("Should report expiry distinctly", func(t *testing.T) {
		token, err := resolver.IssueToken("user-1", "", -time.Minute)
		require.NoError(t, err)
		_, err = resolver.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
	t.Run("Should reject non HMAC algorithms", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = resolver.VerifyToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = ExtractBearerToken("Bearer   ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
