// Package services contains the application services of the creditapp
// client. This file defines the auth service: the login flow (real and
// demo), the logout flow, and the in-memory login outcome the UI renders.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fintechdocs/creditapp/internal/client/api"
	"github.com/fintechdocs/creditapp/internal/client/authgate"
	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/client/session"
	"github.com/fintechdocs/creditapp/internal/common"
	"github.com/fintechdocs/creditapp/internal/logging"
)

// LoginErrorKind classifies a failed login for the UI. The mapping is part
// of the product contract: each kind has its own user-facing message.
type LoginErrorKind int

const (
	// LoginInvalidCredentials: the backend rejected the credentials (401).
	LoginInvalidCredentials LoginErrorKind = iota
	// LoginNetworkError: the backend could not be reached at all.
	LoginNetworkError
	// LoginUnknownError: anything else, including undecodable responses.
	LoginUnknownError
)

// OutcomeStatus is the lifecycle of the last login attempt.
type OutcomeStatus int

const (
	// OutcomePending: no attempt yet, or state was reset by logout.
	OutcomePending OutcomeStatus = iota
	OutcomeSuccess
	OutcomeFailure
)

// LoginOutcome is the transient result of the last login attempt. It is
// never persisted.
type LoginOutcome struct {
	Status OutcomeStatus
	User   *models.User   // set when Status == OutcomeSuccess
	Kind   LoginErrorKind // set when Status == OutcomeFailure
}

// AuthService drives login and logout. On success it writes the session
// into the store and asks the gate to re-derive; every failure leaves the
// current state untouched so the user can retry.
type AuthService struct {
	api   api.Client
	store *session.Store
	gate  *authgate.Gate
	log   logging.Logger

	mu      sync.Mutex
	outcome LoginOutcome
}

func NewAuthService(apiClient api.Client, store *session.Store, gate *authgate.Gate, log logging.Logger) *AuthService {
	return &AuthService{api: apiClient, store: store, gate: gate, log: log}
}

// Outcome returns the result of the most recent login attempt.
func (s *AuthService) Outcome() LoginOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *AuthService) setOutcome(o LoginOutcome) LoginOutcome {
	s.mu.Lock()
	s.outcome = o
	s.mu.Unlock()
	return o
}

func mapLoginError(err error) LoginErrorKind {
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		return LoginInvalidCredentials
	case errors.Is(err, api.ErrUnavailable):
		return LoginNetworkError
	default:
		return LoginUnknownError
	}
}

// Login performs a single login attempt. The email is lower-cased before
// transmission; the other fields go as-is. There is no retry, and an
// attempt started while another is in flight races last-write-wins on the
// stored session.
func (s *AuthService) Login(ctx context.Context, username, email, password string) LoginOutcome {
	email = strings.ToLower(email)

	u, err := s.api.Login(ctx, username, email, password)
	if err != nil {
		kind := mapLoginError(err)
		s.log.Warn(ctx, "login failed", "email", email, "kind", int(kind), "error", err)
		return s.setOutcome(LoginOutcome{Status: OutcomeFailure, Kind: kind})
	}

	if err := s.store.SaveSession(ctx, u); err != nil {
		s.log.Error(ctx, "saving session failed", "error", err)
		return s.setOutcome(LoginOutcome{Status: OutcomeFailure, Kind: LoginUnknownError})
	}

	if _, err := s.gate.Refresh(ctx); err != nil {
		s.log.Error(ctx, "state re-derivation failed", "error", err)
	}

	s.log.Info(ctx, "login succeeded", "user_id", u.ID, "username", u.Username)
	return s.setOutcome(LoginOutcome{Status: OutcomeSuccess, User: u})
}

// LoginDemo logs in with the reserved demo identity. Unlike Login, every
// failure collapses into LoginNetworkError: the demo path shows a single
// generic message regardless of cause.
func (s *AuthService) LoginDemo(ctx context.Context) LoginOutcome {
	o := s.Login(ctx, common.DemoUsername, common.DemoEmail, common.DemoPassword)
	if o.Status == OutcomeFailure && o.Kind != LoginNetworkError {
		o.Kind = LoginNetworkError
		o = s.setOutcome(o)
	}
	return o
}

// Logout clears the persisted session and PIN state, resets the outcome to
// pending, and re-derives the gate. The server-side teardown call is
// best-effort: its failure is logged and never blocks the local wipe.
// Logging out while already logged out is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.setOutcome(LoginOutcome{Status: OutcomePending})

	_, err := s.gate.Refresh(ctx)
	return err
}
