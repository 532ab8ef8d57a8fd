package place

import (
	"hbnb/internal/domain"
	"hbnb/internal/modules/amenity"
)

type CreatePlaceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	// OwnerID defaults to the caller.
	OwnerID   string   `json:"owner_id,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// UpdatePlaceRequest is a partial update. A non-nil Amenities replaces the whole set.
// The owner cannot be changed.
type UpdatePlaceRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

type PlaceResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Price       float64                   `json:"price"`
	Latitude    float64                   `json:"latitude"`
	Longitude   float64                   `json:"longitude"`
	OwnerID     string                    `json:"owner_id"`
	Amenities   []amenity.AmenityResponse `json:"amenities"`
}

func ToPlaceResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		Amenities:   amenity.ToAmenityResponses(p.Amenities),
	}
}

func ToPlaceResponses(places []domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, ToPlaceResponse(&places[i]))
	}
	return out
}
