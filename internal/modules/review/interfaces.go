package review

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/modules/feed"
)

type ReviewStore interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
}

type PlaceLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Publisher is satisfied by *feed.Hub.
type Publisher interface {
	Publish(placeID string, ev feed.Event)
}
