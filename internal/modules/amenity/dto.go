package amenity

import "hbnb/internal/domain"

type CreateAmenityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ToAmenityResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{ID: a.ID, Name: a.Name, Description: a.Description}
}

func ToAmenityResponses(items []domain.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, 0, len(items))
	for i := range items {
		out = append(out, ToAmenityResponse(&items[i]))
	}
	return out
}
