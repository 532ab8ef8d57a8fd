package place

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
	"hbnb/internal/policy"
)

type Service struct {
	places    PlaceStore
	owners    OwnerLookup
	amenities AmenityLookup
}

func NewService(places PlaceStore, owners OwnerLookup, amenities AmenityLookup) *Service {
	return &Service{places: places, owners: owners, amenities: amenities}
}

func (s *Service) Create(ctx context.Context, actor policy.Principal, req CreatePlaceRequest) (*domain.Place, error) {
	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = actor.UserID
	}
	if !policy.CanCreatePlaceFor(actor, ownerID) {
		return nil, fmt.Errorf("%w: you can only create places you own", domain.ErrForbidden)
	}

	p, err := domain.NewPlace(req.Title, req.Description, deref(req.Price), deref(req.Latitude), deref(req.Longitude), ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.owners.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewReferenceError("owner_id", ownerID)
		}
		return nil, err
	}

	p.Amenities, err = s.resolveAmenities(ctx, req.Amenities)
	if err != nil {
		return nil, err
	}

	if err := s.places.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().Str("place_id", p.ID).Str("owner_id", p.OwnerID).Int("amenities", len(p.Amenities)).Msg("place created")
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Place, error) {
	return s.places.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor policy.Principal, id string, req UpdatePlaceRequest) (*domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdatePlace(actor, p) {
		return nil, fmt.Errorf("%w: only the owner or an admin can update this place", domain.ErrForbidden)
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Latitude != nil {
		p.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = *req.Longitude
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if req.Amenities != nil {
		p.Amenities, err = s.resolveAmenities(ctx, *req.Amenities)
		if err != nil {
			return nil, err
		}
	}

	p.Touch()
	if err := s.places.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// resolveAmenities keeps the requested order, drops duplicates and silently skips
// ids that do not resolve.
func (s *Service) resolveAmenities(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return []domain.Amenity{}, nil
	}

	found, err := s.amenities.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Amenity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	out := make([]domain.Amenity, 0, len(found))
	for _, id := range unique {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
