package service

import (
	"context"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/rs/zerolog"
)

// authService forwards credentials to the user service and hands the
// resulting session back to the dashboard.
type authService struct {
	users UserDirectory
	log   zerolog.Logger
}

func newAuthService(users UserDirectory, log zerolog.Logger) *authService {
	return &authService{
		users: users,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	session, err := s.users.Login(ctx, req)
	if err != nil {
		s.log.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		return nil, err
	}
	s.log.Info().Str("user_id", session.ID).Str("role", session.Role).Msg("Login succeeded")
	return session, nil
}
