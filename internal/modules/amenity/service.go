package amenity

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
	"hbnb/internal/policy"
)

type AmenityStore interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	List(ctx context.Context) ([]domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) error
}

type Service struct {
	amenities AmenityStore
}

func NewService(amenities AmenityStore) *Service {
	return &Service{amenities: amenities}
}

func (s *Service) Create(ctx context.Context, actor policy.Principal, req CreateAmenityRequest) (*domain.Amenity, error) {
	if !policy.CanManageAmenities(actor) {
		return nil, fmt.Errorf("%w: admin privileges required", domain.ErrForbidden)
	}

	a, err := domain.NewAmenity(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.amenities.Create(ctx, a); err != nil {
		return nil, err
	}

	log.Info().Str("amenity_id", a.ID).Str("name", a.Name).Msg("amenity created")
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	return s.amenities.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Amenity, error) {
	return s.amenities.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor policy.Principal, id string, req UpdateAmenityRequest) (*domain.Amenity, error) {
	if !policy.CanManageAmenities(actor) {
		return nil, fmt.Errorf("%w: admin privileges required", domain.ErrForbidden)
	}

	a, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	a.Touch()
	if err := s.amenities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
