package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hbnb/internal/database"
	"hbnb/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Test", "User", email, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func mustPlace(t *testing.T, repo *PlaceRepository, ownerID string, amenities ...domain.Amenity) *domain.Place {
	t.Helper()
	p, err := domain.NewPlace("Sea view loft", "two rooms", 120, 43.3, 5.4, ownerID)
	require.NoError(t, err)
	p.Amenities = amenities
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func mustAmenity(t *testing.T, repo *AmenityRepository, name string) *domain.Amenity {
	t.Helper()
	a, err := domain.NewAmenity(name, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func mustReview(t *testing.T, repo *ReviewRepository, placeID, userID string) *domain.Review {
	t.Helper()
	r, err := domain.NewReview("Lovely", 4, placeID, userID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := domain.NewUser("Alice", "Smith", "alice@example.com", true)
	require.NoError(t, err)
	u.PasswordHash = "digest"
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "digest", got.PasswordHash)
	assert.True(t, got.IsAdmin)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepository_WithoutPassword(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	u := mustUser(t, repo, "nopass@example.com")

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.False(t, got.HasPassword())
}

func TestUserRepository_EmailUniqueness(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mustUser(t, repo, "dup@example.com")

	second, err := domain.NewUser("Other", "Person", "dup@example.com", false)
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// exact match only
	mustUser(t, repo, "Dup@example.com")

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_UpdateEmailConflict(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := mustUser(t, repo, "a@example.com")
	mustUser(t, repo, "b@example.com")

	a.Email = "b@example.com"
	err := repo.Update(ctx, a)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	a.Email = "a@example.com"
	a.FirstName = "Renamed"
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FirstName)
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	amenities := NewAmenityRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	owner := mustUser(t, users, "owner@example.com")
	guest := mustUser(t, users, "guest@example.com")
	wifi := mustAmenity(t, amenities, "Wi-Fi")

	ownedPlace := mustPlace(t, places, owner.ID, *wifi)
	guestPlace := mustPlace(t, places, guest.ID)

	onOwnedPlace := mustReview(t, reviews, ownedPlace.ID, guest.ID)
	byOwner := mustReview(t, reviews, guestPlace.ID, owner.ID)

	stats, err := users.DeleteCascade(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Places)
	assert.Equal(t, int64(2), stats.Reviews)

	_, err = users.GetByID(ctx, owner.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = places.GetByID(ctx, ownedPlace.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = reviews.GetByID(ctx, onOwnedPlace.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = reviews.GetByID(ctx, byOwner.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// unrelated data and amenities survive
	_, err = users.GetByID(ctx, guest.ID)
	assert.NoError(t, err)
	_, err = places.GetByID(ctx, guestPlace.ID)
	assert.NoError(t, err)
	_, err = amenities.GetByID(ctx, wifi.ID)
	assert.NoError(t, err)

	var links int64
	require.NoError(t, db.Model(&placeAmenityModel{}).Count(&links).Error)
	assert.Zero(t, links)

	_, err = users.DeleteCascade(ctx, owner.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPlaceRepository_AmenitySetReplaced(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	amenities := NewAmenityRepository(db)
	ctx := context.Background()

	owner := mustUser(t, users, "owner@example.com")
	pool := mustAmenity(t, amenities, "Pool")
	wifi := mustAmenity(t, amenities, "Wi-Fi")
	parking := mustAmenity(t, amenities, "Parking")

	p := mustPlace(t, places, owner.ID, *pool, *wifi)

	got, err := places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{pool.ID, wifi.ID}, got.AmenityIDs())

	got.Amenities = []domain.Amenity{*parking}
	got.Price = 200
	require.NoError(t, places.Update(ctx, got))

	again, err := places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{parking.ID}, again.AmenityIDs())
	assert.Equal(t, 200.0, again.Price)
	assert.Equal(t, "Sea view loft", again.Title)
	assert.Equal(t, owner.ID, again.OwnerID)

	list, err := places.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{parking.ID}, list[0].AmenityIDs())
}

func TestPlaceRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	ctx := context.Background()

	owner := mustUser(t, users, "owner@example.com")
	p := mustPlace(t, places, owner.ID)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&placeModel{}).Where("id = ?", p.ID).
		UpdateColumns(map[string]any{"created_at": old, "updated_at": old}).Error)

	got, err := places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.Equal(old))

	got.Price = 80
	got.Touch()
	require.NoError(t, places.Update(ctx, got))

	again, err := places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(old))
	assert.True(t, again.CreatedAt.Equal(old))
	assert.Equal(t, 80.0, again.Price)
}

func TestAmenityRepository_GetByIDsSkipsUnknown(t *testing.T) {
	db := setupDB(t)
	repo := NewAmenityRepository(db)

	wifi := mustAmenity(t, repo, "Wi-Fi")

	got, err := repo.GetByIDs(context.Background(), []string{wifi.ID, "does-not-exist"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, wifi.ID, got[0].ID)
}

func TestReviewRepository_OnePerUserPerPlace(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	owner := mustUser(t, users, "owner@example.com")
	u1 := mustUser(t, users, "u1@example.com")
	u2 := mustUser(t, users, "u2@example.com")
	p1 := mustPlace(t, places, owner.ID)

	first := mustReview(t, reviews, p1.ID, u1.ID)

	dup, err := domain.NewReview("Again", 2, p1.ID, u1.ID)
	require.NoError(t, err)
	err = reviews.Create(ctx, dup)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	mustReview(t, reviews, p1.ID, u2.ID)

	found, err := reviews.GetByUserAndPlace(ctx, u1.ID, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	byPlace, err := reviews.ListByPlace(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, byPlace, 2)
}

func TestReviewRepository_UpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	owner := mustUser(t, users, "owner@example.com")
	guest := mustUser(t, users, "guest@example.com")
	p := mustPlace(t, places, owner.ID)
	r := mustReview(t, reviews, p.ID, guest.ID)

	r.Text = "Changed my mind"
	r.Rating = 2
	r.Touch()
	require.NoError(t, reviews.Update(ctx, r))

	got, err := reviews.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed my mind", got.Text)
	assert.Equal(t, 2, got.Rating)

	require.NoError(t, reviews.Delete(ctx, r.ID))
	err = reviews.Delete(ctx, r.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestForeignKeys_RejectOrphans(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	places := NewPlaceRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	p, err := domain.NewPlace("Ghost house", "", 10, 0, 0, "gone-owner")
	require.NoError(t, err)
	err = places.Create(ctx, p)
	var re *domain.ReferenceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "owner_id", re.Field)

	owner := mustUser(t, users, "owner@example.com")
	kept := mustPlace(t, places, owner.ID)

	r, err := domain.NewReview("Nice", 5, "gone-place", owner.ID)
	require.NoError(t, err)
	err = reviews.Create(ctx, r)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "place_id", re.Field)

	r, err = domain.NewReview("Nice", 5, kept.ID, "gone-user")
	require.NoError(t, err)
	err = reviews.Create(ctx, r)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "user_id", re.Field)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
	assert.False(t, isUniqueViolation(errors.New("disk full")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.False(t, isForeignKeyViolation(nil))
	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.False(t, isForeignKeyViolation(errors.New("UNIQUE constraint failed: users.email")))
}
