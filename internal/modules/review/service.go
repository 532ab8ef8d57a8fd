package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
	"hbnb/internal/modules/feed"
	"hbnb/internal/policy"
)

type Service struct {
	reviews ReviewStore
	places  PlaceLookup
	users   UserLookup
	events  Publisher
}

// NewService builds the review service. events may be nil.
func NewService(reviews ReviewStore, places PlaceLookup, users UserLookup, events Publisher) *Service {
	return &Service{reviews: reviews, places: places, users: users, events: events}
}

func (s *Service) Create(ctx context.Context, actor policy.Principal, req CreateReviewRequest) (*domain.Review, error) {
	rv, err := domain.NewReview(req.Text, req.Rating, req.PlaceID, actor.UserID)
	if err != nil {
		return nil, err
	}

	place, err := s.places.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewReferenceError("place_id", req.PlaceID)
		}
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, actor.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewReferenceError("user_id", actor.UserID)
		}
		return nil, err
	}

	if !policy.CanReviewPlace(actor, place) {
		return nil, fmt.Errorf("%w: you cannot review your own place", domain.ErrForbidden)
	}

	_, err = s.GetUserReviewForPlace(ctx, actor.UserID, place.ID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: you have already reviewed this place", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	log.Info().Str("review_id", rv.ID).Str("place_id", rv.PlaceID).Str("user_id", rv.UserID).Msg("review created")
	s.publish(feed.EventReviewCreated, rv)
	return rv, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

// ListByPlace returns the reviews of a place oldest first.
func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return s.reviews.ListByPlace(ctx, placeID)
}

// GetUserReviewForPlace returns ErrNotFound when the user has not reviewed the place.
func (s *Service) GetUserReviewForPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	return s.reviews.GetByUserAndPlace(ctx, userID, placeID)
}

// Update changes text and rating only. Author and place are fixed at creation.
func (s *Service) Update(ctx context.Context, actor policy.Principal, id string, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyReview(actor, rv) {
		return nil, fmt.Errorf("%w: only the author or an admin can update this review", domain.ErrForbidden)
	}

	if req.Text != nil {
		rv.Text = *req.Text
	}
	if req.Rating != nil {
		rv.Rating = *req.Rating
	}
	if err := rv.Validate(); err != nil {
		return nil, err
	}

	rv.Touch()
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}

	s.publish(feed.EventReviewUpdated, rv)
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, actor policy.Principal, id string) error {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModifyReview(actor, rv) {
		return fmt.Errorf("%w: only the author or an admin can delete this review", domain.ErrForbidden)
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("review_id", id).Str("deleted_by", actor.UserID).Msg("review deleted")
	s.publish(feed.EventReviewDeleted, rv)
	return nil
}

func (s *Service) publish(eventType string, rv *domain.Review) {
	if s.events == nil {
		return
	}
	s.events.Publish(rv.PlaceID, feed.Event{
		Type:   eventType,
		Review: ToReviewResponse(rv),
	})
}
