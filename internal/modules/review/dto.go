package review

import "hbnb/internal/domain"

// CreateReviewRequest carries no author: the review is always written by the caller.
type CreateReviewRequest struct {
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id" validate:"required"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

type ReviewResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Rating:  r.Rating,
		UserID:  r.UserID,
		PlaceID: r.PlaceID,
	}
}

func ToReviewResponses(items []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for i := range items {
		out = append(out, ToReviewResponse(&items[i]))
	}
	return out
}
