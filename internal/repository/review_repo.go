package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		Text:      m.Text,
		Rating:    m.Rating,
		PlaceID:   m.PlaceID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	return reviewModel{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainReviews(rows []reviewModel) []domain.Review {
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out
}

// Create relies on idx_reviews_user_place: a second review by the same user on the
// same place fails with domain.ErrConflict even when two requests race.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: you have already reviewed this place", domain.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return r.missingReference(ctx, rv)
		}
		return err
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, "review")
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	var m reviewModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, "review")
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var rows []reviewModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(rows), nil
}

// ListByPlace returns the reviews of a place, oldest first.
func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainReviews(rows), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"text":       rv.Text,
			"rating":     rv.Rating,
			"updated_at": rv.UpdatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return wrapNotFound("review")
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&reviewModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return wrapNotFound("review")
	}
	return nil
}

// missingReference names the parent that vanished under a review insert.
func (r *ReviewRepository) missingReference(ctx context.Context, rv *domain.Review) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&placeModel{}).Where("id = ?", rv.PlaceID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.NewReferenceError("place_id", rv.PlaceID)
	}
	return domain.NewReferenceError("user_id", rv.UserID)
}
