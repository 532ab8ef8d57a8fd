package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CascadeStats counts the rows removed alongside a user.
type CascadeStats struct {
	Places  int64
	Reviews int64
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: derefString(m.PasswordHash),
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: nullableString(u.PasswordHash),
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return err
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return toDomainUser(m), nil
}

// GetByEmail matches the address exactly, case included.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", u.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return fmt.Errorf("%w: email already in use", domain.ErrConflict)
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return wrapNotFound("user")
	}
	return nil
}

// DeleteCascade removes the user together with every review on the user's places,
// every review the user wrote, the amenity links of the user's places and the places
// themselves, in that order and in one transaction. Amenities are left untouched.
func (r *UserRepository) DeleteCascade(ctx context.Context, id string) (CascadeStats, error) {
	var stats CascadeStats

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return wrapNotFound("user")
		}

		var placeIDs []string
		if err := tx.Model(&placeModel{}).Where("owner_id = ?", id).Pluck("id", &placeIDs).Error; err != nil {
			return err
		}

		reviews := tx.Where("user_id = ?", id)
		if len(placeIDs) > 0 {
			reviews = reviews.Or("place_id IN ?", placeIDs)
		}
		res := reviews.Delete(&reviewModel{})
		if res.Error != nil {
			return res.Error
		}
		stats.Reviews = res.RowsAffected

		if len(placeIDs) > 0 {
			if err := tx.Where("place_id IN ?", placeIDs).Delete(&placeAmenityModel{}).Error; err != nil {
				return err
			}
			res = tx.Where("id IN ?", placeIDs).Delete(&placeModel{})
			if res.Error != nil {
				return res.Error
			}
			stats.Places = res.RowsAffected
		}

		return tx.Where("id = ?", id).Delete(&userModel{}).Error
	})

	return stats, err
}
