package place

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbnb/internal/domain"
	"hbnb/internal/policy"
)

type mockPlaceStore struct {
	mock.Mock
}

func (m *mockPlaceStore) Create(ctx context.Context, p *domain.Place) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlaceStore) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *mockPlaceStore) List(ctx context.Context) ([]domain.Place, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *mockPlaceStore) Update(ctx context.Context, p *domain.Place) error {
	return m.Called(ctx, p).Error(0)
}

type mockOwners struct {
	mock.Mock
}

func (m *mockOwners) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockAmenities struct {
	mock.Mock
}

func (m *mockAmenities) GetByIDs(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

var (
	admin = policy.Principal{UserID: "admin-1", IsAdmin: true}
	owner = policy.Principal{UserID: "owner-1"}
	other = policy.Principal{UserID: "other-1"}
)

func ptr[T any](v T) *T { return &v }

func validCreate() CreatePlaceRequest {
	return CreatePlaceRequest{
		Title:     "Cozy flat",
		Price:     ptr(100.0),
		Latitude:  ptr(48.85),
		Longitude: ptr(2.35),
	}
}

var lastWeek = time.Now().UTC().Add(-7 * 24 * time.Hour)

func storedPlace() *domain.Place {
	return &domain.Place{
		ID:        "place-1",
		Title:     "Cozy flat",
		Price:     100,
		Latitude:  48.85,
		Longitude: 2.35,
		OwnerID:   "owner-1",
		Amenities: []domain.Amenity{{ID: "a-1", Name: "Pool"}},
		CreatedAt: lastWeek,
		UpdatedAt: lastWeek,
	}
}

func TestService_Create_DefaultsOwnerToCaller(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	owners.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1"}, nil)
	places.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Place) bool {
		return p.OwnerID == "owner-1"
	})).Return(nil)

	svc := NewService(places, owners, amenities)
	p, err := svc.Create(context.Background(), owner, validCreate())

	require.NoError(t, err)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Empty(t, p.Amenities)
	places.AssertExpectations(t)
	amenities.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestService_Create_ForAnotherOwner(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	svc := NewService(places, owners, amenities)

	req := validCreate()
	req.OwnerID = "owner-1"

	_, err := svc.Create(context.Background(), other, req)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	owners.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1"}, nil)
	places.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), admin, req)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", p.OwnerID)
}

func TestService_Create_UnknownOwner(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	owners.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := NewService(places, owners, amenities)
	req := validCreate()
	req.OwnerID = "ghost"

	_, err := svc.Create(context.Background(), admin, req)

	var re *domain.ReferenceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "owner_id", re.Field)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_SkipsUnknownAmenities(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	owners.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1"}, nil)
	amenities.On("GetByIDs", mock.Anything, []string{"a-2", "nope", "a-1"}).
		Return([]domain.Amenity{{ID: "a-1", Name: "Pool"}, {ID: "a-2", Name: "Wi-Fi"}}, nil)
	places.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(places, owners, amenities)
	req := validCreate()
	req.Amenities = []string{"a-2", "nope", "a-1", "a-2"}

	p, err := svc.Create(context.Background(), owner, req)

	require.NoError(t, err)
	assert.Equal(t, []string{"a-2", "a-1"}, p.AmenityIDs())
}

func TestService_Create_InvalidCoordinates(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	svc := NewService(places, owners, amenities)

	req := validCreate()
	req.Latitude = ptr(91.0)

	_, err := svc.Create(context.Background(), owner, req)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "latitude", ve.Field)
	owners.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Update_PartialPrice(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	places.On("GetByID", mock.Anything, "place-1").Return(storedPlace(), nil)
	places.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(places, owners, amenities)
	p, err := svc.Update(context.Background(), owner, "place-1", UpdatePlaceRequest{Price: ptr(150.0)})

	require.NoError(t, err)
	assert.Equal(t, 150.0, p.Price)
	assert.Equal(t, "Cozy flat", p.Title)
	assert.Equal(t, 48.85, p.Latitude)
	assert.Equal(t, []string{"a-1"}, p.AmenityIDs())
	assert.True(t, p.UpdatedAt.After(lastWeek))
	assert.Equal(t, lastWeek, p.CreatedAt)
	amenities.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestService_Update_ReplacesAmenities(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	places.On("GetByID", mock.Anything, "place-1").Return(storedPlace(), nil)
	amenities.On("GetByIDs", mock.Anything, []string{"a-3"}).Return([]domain.Amenity{{ID: "a-3", Name: "Parking"}}, nil)
	places.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(places, owners, amenities)
	p, err := svc.Update(context.Background(), admin, "place-1", UpdatePlaceRequest{Amenities: &[]string{"a-3"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"a-3"}, p.AmenityIDs())

	places.On("GetByID", mock.Anything, "place-2").Return(&domain.Place{
		ID: "place-2", Title: "Loft", OwnerID: "owner-1", Amenities: []domain.Amenity{{ID: "a-1"}},
	}, nil)
	p, err = svc.Update(context.Background(), admin, "place-2", UpdatePlaceRequest{Amenities: &[]string{}})
	require.NoError(t, err)
	assert.Empty(t, p.Amenities)
}

func TestService_Update_NotOwner(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	places.On("GetByID", mock.Anything, "place-1").Return(storedPlace(), nil)

	svc := NewService(places, owners, amenities)
	_, err := svc.Update(context.Background(), other, "place-1", UpdatePlaceRequest{Price: ptr(1.0)})

	assert.True(t, errors.Is(err, domain.ErrForbidden))
	places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidNotPersisted(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	places.On("GetByID", mock.Anything, "place-1").Return(storedPlace(), nil)

	svc := NewService(places, owners, amenities)
	_, err := svc.Update(context.Background(), owner, "place-1", UpdatePlaceRequest{Price: ptr(-5.0)})

	assert.True(t, domain.IsValidation(err))
	places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	places, owners, amenities := new(mockPlaceStore), new(mockOwners), new(mockAmenities)
	places.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(places, owners, amenities)
	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
