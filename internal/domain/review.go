package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	now := time.Now().UTC()
	r := &Review{
		ID:        uuid.NewString(),
		Text:      text,
		Rating:    rating,
		PlaceID:   placeID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return invalid("text", "cannot be empty")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return invalid("rating", "must be between 1 and 5")
	}
	if r.PlaceID == "" {
		return invalid("place_id", "is required")
	}
	if r.UserID == "" {
		return invalid("user_id", "is required")
	}
	return nil
}

func (r *Review) Touch() {
	r.UpdatedAt = time.Now().UTC()
}
