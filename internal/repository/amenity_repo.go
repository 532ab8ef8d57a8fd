package repository

import (
	"context"

	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func toDomainAmenity(m amenityModel) *domain.Amenity {
	return &domain.Amenity{
		ID:          m.ID,
		Name:        m.Name,
		Description: derefString(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toAmenityModel(a *domain.Amenity) amenityModel {
	return amenityModel{
		ID:          a.ID,
		Name:        a.Name,
		Description: nullableString(a.Description),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	m := toAmenityModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAmenity(m)
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	var m amenityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, "amenity")
	}
	return toDomainAmenity(m), nil
}

// GetByIDs returns the amenities that exist among ids. Unknown ids are skipped.
func (r *AmenityRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	if len(ids) == 0 {
		return []domain.Amenity{}, nil
	}
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAmenity(m))
	}
	return out, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAmenity(m))
	}
	return out, nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	m := toAmenityModel(a)
	tx := r.db.WithContext(ctx).
		Model(&amenityModel{}).
		Where("id = ?", a.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return wrapNotFound("amenity")
	}
	return nil
}
