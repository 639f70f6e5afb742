package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// IdentityRepositoryInterface defines the interface for identity persistence.
type IdentityRepositoryInterface interface {
	Save(ctx context.Context, displayName string) error
	Load(ctx context.Context) (string, bool, error)
	Delete(ctx context.Context) error
}

// SessionService records the display identity of the signed-in user.
// Authentication is an opaque external boundary: this service only
// receives "logged in as X" and "logged out" events and never sees
// credentials.
type SessionService struct {
	repo IdentityRepositoryInterface
}

// NewSessionService creates a SessionService.
func NewSessionService(repo IdentityRepositoryInterface) *SessionService {
	return &SessionService{repo: repo}
}

// Login records the display identity reported by the identity provider.
func (s *SessionService) Login(ctx context.Context, displayName string) error {
	if err := s.repo.Save(ctx, displayName); err != nil {
		return err
	}
	log.Info().Str("user", displayName).Msg("logged in")
	return nil
}

// Logout clears the stored identity. Idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return err
	}
	log.Info().Msg("logged out")
	return nil
}

// Current returns the stored identity. A persistence fault reads as
// "not signed in".
func (s *SessionService) Current(ctx context.Context) (string, bool) {
	name, found, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("identity load failed, treating as signed out")
		return "", false
	}
	return name, found
}
