// Package client holds Go clients for the mentorly API.
package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/yigit/mentorly/internal/app/models/dto"
)

// ErrFetchFailed is reported when /me answers with a non-2xx status
const ErrFetchFailed = "Failed to fetch user data"

const currentUserPath = "/me"

// State is the loader's view of the current user
type State struct {
	Data      dto.CurrentUserResponse
	IsLoading bool
	Error     string
}

// Option configures a CurrentUserLoader
type Option func(*resty.Client)

// WithToken sends the access token as a bearer credential
func WithToken(token string) Option {
	return func(c *resty.Client) {
		c.SetAuthToken(token)
	}
}

// WithTimeout bounds each request
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// CurrentUserLoader fetches the aggregate current-user payload. Concurrent
// loads share one request; once closed, results are no longer applied.
type CurrentUserLoader struct {
	http  *resty.Client
	group singleflight.Group

	mu     sync.RWMutex
	state  State
	closed bool
}

// NewCurrentUserLoader creates a loader against an API base URL such as
// "http://localhost:8080/api/v1"
func NewCurrentUserLoader(baseURL string, opts ...Option) *CurrentUserLoader {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(httpClient)
	}
	return &CurrentUserLoader{http: httpClient}
}

// Load fetches /me and returns the resulting state
func (l *CurrentUserLoader) Load(ctx context.Context) State {
	l.update(func(s *State) {
		s.IsLoading = true
	})

	v, err, _ := l.group.Do(currentUserPath, func() (any, error) {
		return l.fetch(ctx)
	})

	l.update(func(s *State) {
		s.IsLoading = false
		if err != nil {
			s.Data = dto.CurrentUserResponse{}
			s.Error = err.Error()
			return
		}
		s.Data = *v.(*dto.CurrentUserResponse)
		s.Error = ""
	})
	return l.State()
}

func (l *CurrentUserLoader) fetch(ctx context.Context) (*dto.CurrentUserResponse, error) {
	var data dto.CurrentUserResponse
	resp, err := l.http.R().
		SetContext(ctx).
		SetResult(&data).
		Get(currentUserPath)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(ErrFetchFailed)
	}
	return &data, nil
}

// State returns a snapshot of the current state
func (l *CurrentUserLoader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Close stops applying results of loads that are still in flight
func (l *CurrentUserLoader) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

func (l *CurrentUserLoader) update(fn func(*State)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	fn(&l.state)
}
