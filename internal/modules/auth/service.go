package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
)

type Service struct {
	users     UserFinder
	passwords PasswordVerifier
	tokens    TokenIssuer
	accessTTL time.Duration
}

func NewService(users UserFinder, passwords PasswordVerifier, tokens TokenIssuer, accessTTL time.Duration) *Service {
	return &Service{users: users, passwords: passwords, tokens: tokens, accessTTL: accessTTL}
}

// Login exchanges credentials for an access token. Unknown emails, wrong passwords
// and accounts without a password all fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.HasPassword() {
		log.Warn().Str("user_id", u.ID).Msg("login attempt for account without password")
		return nil, domain.ErrInvalidCredentials
	}
	if !s.passwords.Verify(req.Password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
