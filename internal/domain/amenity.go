package domain

import (
	"time"

	"github.com/google/uuid"
)

type Amenity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAmenity(name, description string) (*Amenity, error) {
	now := time.Now().UTC()
	a := &Amenity{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) Validate() error {
	return ValidateName("name", a.Name)
}

func (a *Amenity) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
