package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorly/internal/app/models"
)

func TestCurrentUserLoader_Load(t *testing.T) {
	t.Run("Should load the current user with the bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/me", r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": {"id": "user-1", "email": "jane@example.com"}, "profile": null,
				"student": null, "mentor": null, "bookings": [], "roles": ["student", "mentor"],
				"primaryRole": "mentor", "isMultiRole": true}`))
		}))
		defer server.Close()

		loader := NewCurrentUserLoader(server.URL+"/api/v1", WithToken("token-1"))
		state := loader.Load(context.Background())

		assert.False(t, state.IsLoading)
		assert.Empty(t, state.Error)
		require.NotNil(t, state.Data.User)
		assert.Equal(t, "user-1", state.Data.User.ID)
		assert.Equal(t, []models.Role{models.RoleStudent, models.RoleMentor}, state.Data.Roles)
		require.NotNil(t, state.Data.PrimaryRole)
		assert.Equal(t, models.RoleMentor, *state.Data.PrimaryRole)
		assert.True(t, state.Data.IsMultiRole)
	})

	t.Run("Should report a generic error and keep defaults on failure status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "boom"}`))
		}))
		defer server.Close()

		state := NewCurrentUserLoader(server.URL).Load(context.Background())

		assert.Equal(t, ErrFetchFailed, state.Error)
		assert.False(t, state.IsLoading)
		assert.Nil(t, state.Data.User)
		assert.Nil(t, state.Data.Profile)
		assert.Empty(t, state.Data.Bookings)
		assert.False(t, state.Data.IsMultiRole)
	})

	t.Run("Should share one request between concurrent loads", func(t *testing.T) {
		var hits atomic.Int32
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			<-release
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": null}`))
		}))
		defer server.Close()

		loader := NewCurrentUserLoader(server.URL)
		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				loader.Load(context.Background())
			}()
		}
		// Let every caller join the in-flight request before it completes
		require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), hits.Load())
		assert.Nil(t, loader.State().Data.User)
	})

	t.Run("Should not apply results after close", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": {"id": "user-1"}}`))
		}))
		defer server.Close()

		loader := NewCurrentUserLoader(server.URL)
		done := make(chan State)
		go func() { done <- loader.Load(context.Background()) }()

		require.Eventually(t, func() bool { return loader.State().IsLoading }, time.Second, 5*time.Millisecond)
		loader.Close()
		close(release)

		state := <-done
		assert.True(t, state.IsLoading)
		assert.Nil(t, state.Data.User)
	})
}
