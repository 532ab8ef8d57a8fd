package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxTitleLength = 100

type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	Amenities   []Amenity `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	now := time.Now().UTC()
	p := &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		Amenities:   []Amenity{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the place fields. Range bounds are inclusive.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return invalid("title", "cannot be empty")
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLength {
		return invalid("title", "must be 100 characters or fewer")
	}
	if p.Price < 0 {
		return invalid("price", "must be a non-negative number")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	if p.OwnerID == "" {
		return invalid("owner_id", "is required")
	}
	return nil
}

func (p *Place) AmenityIDs() []string {
	ids := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		ids = append(ids, a.ID)
	}
	return ids
}

func (p *Place) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
