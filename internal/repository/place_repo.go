package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeAmenityRow struct {
	PlaceID     string    `gorm:"column:place_id"`
	ID          string    `gorm:"column:id"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func toDomainPlace(m placeModel, amenities []domain.Amenity) *domain.Place {
	if amenities == nil {
		amenities = []domain.Amenity{}
	}
	return &domain.Place{
		ID:          m.ID,
		Title:       m.Title,
		Description: derefString(m.Description),
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OwnerID:     m.OwnerID,
		Amenities:   amenities,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPlaceModel(p *domain.Place) placeModel {
	return placeModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: nullableString(p.Description),
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewReferenceError("owner_id", p.OwnerID)
			}
			return err
		}
		if err := replaceAmenityLinks(tx, p.ID, p.AmenityIDs()); err != nil {
			return err
		}
		p.CreatedAt = m.CreatedAt
		p.UpdatedAt = m.UpdatedAt
		return nil
	})
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	db := r.db.WithContext(ctx)

	var m placeModel
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, "place")
	}

	amenities, err := loadAmenities(db, []string{m.ID})
	if err != nil {
		return nil, err
	}
	return toDomainPlace(m, amenities[m.ID]), nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	db := r.db.WithContext(ctx)

	var rows []placeModel
	if err := db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Place{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}
	amenities, err := loadAmenities(db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Place, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPlace(m, amenities[m.ID]))
	}
	return out, nil
}

// Update writes the scalar fields and replaces the amenity set with p.Amenities.
func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&placeModel{}).
			Where("id = ?", p.ID).
			Select("*").
			Omit("id", "owner_id", "created_at").
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return wrapNotFound("place")
		}
		return replaceAmenityLinks(tx, p.ID, p.AmenityIDs())
	})
}

func replaceAmenityLinks(tx *gorm.DB, placeID string, amenityIDs []string) error {
	if err := tx.Where("place_id = ?", placeID).Delete(&placeAmenityModel{}).Error; err != nil {
		return err
	}
	if len(amenityIDs) == 0 {
		return nil
	}
	links := make([]placeAmenityModel, 0, len(amenityIDs))
	for _, id := range amenityIDs {
		links = append(links, placeAmenityModel{PlaceID: placeID, AmenityID: id})
	}
	return tx.Create(&links).Error
}

func loadAmenities(db *gorm.DB, placeIDs []string) (map[string][]domain.Amenity, error) {
	var rows []placeAmenityRow
	err := db.Table("amenities").
		Select("place_amenity.place_id, amenities.id, amenities.name, amenities.description, amenities.created_at, amenities.updated_at").
		Joins("JOIN place_amenity ON place_amenity.amenity_id = amenities.id").
		Where("place_amenity.place_id IN ?", placeIDs).
		Order("amenities.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string][]domain.Amenity, len(placeIDs))
	for _, row := range rows {
		out[row.PlaceID] = append(out[row.PlaceID], domain.Amenity{
			ID:          row.ID,
			Name:        row.Name,
			Description: derefString(row.Description),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}
