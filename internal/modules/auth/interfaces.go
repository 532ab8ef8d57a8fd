package auth

import (
	"context"

	"hbnb/internal/domain"
)

type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PasswordVerifier interface {
	Verify(plain, digest string) bool
}

type TokenIssuer interface {
	GenerateToken(userID string, isAdmin bool) (string, error)
}
