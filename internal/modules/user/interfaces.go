package user

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/repository"
)

// UserStore is the subset of repository.UserRepository the service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	DeleteCascade(ctx context.Context, id string) (repository.CascadeStats, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}
