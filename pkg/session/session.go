package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/pkg/client"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

// API is the part of the portal API a session needs.
type API interface {
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

// State is the authenticated client state.
type State struct {
	User  client.User
	Token string
}

// Session holds the logged-in user for a client and mirrors it to Storage so
// a later process can pick it up again.
type Session struct {
	mu      sync.Mutex
	api     API
	storage Storage
	logger  *logrus.Logger
	state   *State
}

// New restores a previous session from storage when both keys are present
// and the user record parses. Anything else clears storage and starts logged
// out. Restoration problems are logged, never returned.
func New(ctx context.Context, api API, storage Storage, logger *logrus.Logger) *Session {
	s := &Session{api: api, storage: storage, logger: logger}
	s.rehydrate(ctx)
	return s
}

func (s *Session) rehydrate(ctx context.Context) {
	token, okToken, errToken := s.storage.Get(ctx, KeyToken)
	raw, okUser, errUser := s.storage.Get(ctx, KeyUser)
	if err := errors.Join(errToken, errUser); err != nil {
		s.warn(err, "failed to read stored session")
		s.clearStorage(ctx)
		return
	}
	if !okToken && !okUser {
		return
	}
	var u client.User
	if !okToken || !okUser || token == "" || json.Unmarshal([]byte(raw), &u) != nil || u.ID == "" {
		s.warn(nil, "discarding incomplete or corrupt stored session")
		s.clearStorage(ctx)
		return
	}
	s.state = &State{User: u, Token: token}
}

// Login authenticates against the API. It reports false for rejected
// credentials and for transport failures alike; the latter are logged.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		var apiErr *client.APIError
		if !errors.As(err, &apiErr) {
			s.warn(err, "login request failed")
		}
		return false
	}

	raw, err := json.Marshal(res.User)
	if err != nil {
		s.warn(err, "failed to encode user")
		return false
	}
	s.state = &State{User: res.User, Token: res.Token}
	if err := errors.Join(
		s.storage.Set(ctx, KeyToken, res.Token),
		s.storage.Set(ctx, KeyUser, string(raw)),
	); err != nil {
		// the in-memory session stays valid for this process
		s.warn(err, "failed to persist session")
	}
	return true
}

// Logout forgets the session locally and in storage. When a token was held
// the server is asked to revoke it; failure there is only logged. Calling
// Logout while logged out is a no-op apart from clearing storage.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil && s.state.Token != "" && s.api != nil {
		if err := s.api.Logout(ctx, s.state.Token); err != nil {
			s.warn(err, "server-side logout failed")
		}
	}
	s.state = nil
	s.clearStorage(ctx)
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil
}

// CurrentUser returns the logged-in user, or ok=false.
func (s *Session) CurrentUser() (client.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return client.User{}, false
	}
	return s.state.User, true
}

// Token returns the bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return ""
	}
	return s.state.Token
}

func (s *Session) clearStorage(ctx context.Context) {
	if err := s.storage.Clear(ctx, KeyToken, KeyUser); err != nil {
		s.warn(err, "failed to clear stored session")
	}
}

func (s *Session) warn(err error, msg string) {
	if s.logger == nil {
		return
	}
	entry := s.logger.WithField("component", "session")
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(msg)
}
