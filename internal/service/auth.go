// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/models"
)

// AuthService authenticates against the backend and retains the resulting
// session for the lifetime of the client process.
type AuthService struct {
	api    Authenticator
	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewAuthService wraps the transport's authentication surface.
func NewAuthService(api Authenticator, log *logger.Logger) *AuthService {
	return &AuthService{api: api, logger: log}
}

// Register creates a new account and stores the returned session.
func (a *AuthService) Register(ctx context.Context, creds models.Credentials) error {
	session, err := a.api.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	a.setSession(session)
	a.logger.Info().Str("login", session.Login).Msg("registered")
	return nil
}

// Login authenticates existing credentials and stores the returned session.
func (a *AuthService) Login(ctx context.Context, creds models.Credentials) error {
	session, err := a.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login user: %w", err)
	}

	a.setSession(session)
	a.logger.Info().Str("login", session.Login).Msg("logged in")
	return nil
}

// Session returns the current session; zero value when not authenticated.
func (a *AuthService) Session() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// Authenticated reports whether a login or registration succeeded.
func (a *AuthService) Authenticated() bool {
	return a.Session().Token != ""
}

func (a *AuthService) setSession(session models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = session
}
