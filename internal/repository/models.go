package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	FirstName    string    `gorm:"column:first_name;size:50;not null"`
	LastName     string    `gorm:"column:last_name;size:50;not null"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash *string   `gorm:"column:password_hash;size:128"`
	IsAdmin      bool      `gorm:"column:is_admin;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type placeModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Title       string    `gorm:"column:title;size:100;not null"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price;not null"`
	Latitude    float64   `gorm:"column:latitude;not null"`
	Longitude   float64   `gorm:"column:longitude;not null"`
	OwnerID     string    `gorm:"column:owner_id;size:36;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Owner *userModel `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (placeModel) TableName() string { return "places" }

type amenityModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Name        string    `gorm:"column:name;size:50;not null"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (amenityModel) TableName() string { return "amenities" }

type placeAmenityModel struct {
	PlaceID   string `gorm:"column:place_id;primaryKey;size:36"`
	AmenityID string `gorm:"column:amenity_id;primaryKey;size:36"`

	Place   *placeModel   `gorm:"foreignKey:PlaceID;references:ID;constraint:OnDelete:CASCADE"`
	Amenity *amenityModel `gorm:"foreignKey:AmenityID;references:ID;constraint:OnDelete:CASCADE"`
}

func (placeAmenityModel) TableName() string { return "place_amenity" }

type reviewModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Text      string    `gorm:"column:text;not null"`
	Rating    int       `gorm:"column:rating;not null"`
	PlaceID   string    `gorm:"column:place_id;size:36;not null;uniqueIndex:idx_reviews_user_place,priority:2;index"`
	UserID    string    `gorm:"column:user_id;size:36;not null;uniqueIndex:idx_reviews_user_place,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Place *placeModel `gorm:"foreignKey:PlaceID;references:ID;constraint:OnDelete:CASCADE"`
	User  *userModel  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (reviewModel) TableName() string { return "reviews" }

// AutoMigrate creates or updates the schema, including the unique indexes that
// enforce email uniqueness and one review per user per place.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&placeModel{},
		&amenityModel{},
		&placeAmenityModel{},
		&reviewModel{},
	)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports a row that points at a parent deleted or never created,
// for example a place inserted while its owner is being removed.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wrapNotFound(what)
	}
	return err
}

func wrapNotFound(what string) error {
	return &notFoundError{what: what}
}

type notFoundError struct{ what string }

func (e *notFoundError) Error() string { return e.what + " not found" }
func (e *notFoundError) Unwrap() error { return domain.ErrNotFound }

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
