package place

import (
	"context"

	"hbnb/internal/domain"
)

type PlaceStore interface {
	Create(ctx context.Context, p *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
	Update(ctx context.Context, p *domain.Place) error
}

type OwnerLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AmenityLookup returns the amenities that exist among ids; unknown ids are omitted.
type AmenityLookup interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Amenity, error)
}
