package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
	"hbnb/internal/policy"
	"hbnb/internal/repository"
)

type Service struct {
	users  UserStore
	hasher PasswordHasher
}

func NewService(users UserStore, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, actor policy.Principal, req CreateUserRequest) (*domain.User, error) {
	if !policy.CanCreateUser(actor) {
		return nil, fmt.Errorf("%w: admin privileges required", domain.ErrForbidden)
	}
	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	u, err := domain.NewUser(req.FirstName, req.LastName, req.Email, req.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, u.Email, ""); err != nil {
		return nil, err
	}

	if req.Password != "" {
		digest, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = digest
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", u.ID).Bool("is_admin", u.IsAdmin).Msg("user created")
	return u, nil
}

// EnsureAdmin creates the bootstrap administrator unless a user with that email
// already exists. It reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, req CreateUserRequest) (*domain.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	req.IsAdmin = true
	u, err := s.create(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor policy.Principal, id string, req UpdateUserRequest) (*domain.User, error) {
	if !policy.CanUpdateUser(actor, id) {
		return nil, fmt.Errorf("%w: you can only update your own profile", domain.ErrForbidden)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsAdmin != nil && *req.IsAdmin != u.IsAdmin && !policy.CanGrantAdmin(actor) {
		return nil, fmt.Errorf("%w: only an admin can change is_admin", domain.ErrForbidden)
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := s.ensureEmailFree(ctx, u.Email, u.ID); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		if *req.Password == "" {
			return nil, &domain.ValidationError{Field: "password", Reason: "must not be empty"}
		}
		digest, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = digest
	}

	u.Touch()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, actor policy.Principal, id string) (repository.CascadeStats, error) {
	if !policy.CanDeleteUser(actor, id) {
		return repository.CascadeStats{}, fmt.Errorf("%w: you can only delete your own account", domain.ErrForbidden)
	}

	stats, err := s.users.DeleteCascade(ctx, id)
	if err != nil {
		return repository.CascadeStats{}, err
	}

	log.Info().
		Str("user_id", id).
		Str("deleted_by", actor.UserID).
		Int64("places", stats.Places).
		Int64("reviews", stats.Reviews).
		Msg("user deleted")
	return stats, nil
}

// ensureEmailFree fails with ErrConflict when email belongs to a user other than selfID.
func (s *Service) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID == selfID:
		return nil
	case selfID == "":
		return fmt.Errorf("%w: email already registered", domain.ErrConflict)
	default:
		return fmt.Errorf("%w: email already in use", domain.ErrConflict)
	}
}
