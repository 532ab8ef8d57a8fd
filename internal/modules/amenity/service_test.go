package amenity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbnb/internal/domain"
	"hbnb/internal/policy"
)

type mockAmenityStore struct {
	mock.Mock
}

func (m *mockAmenityStore) Create(ctx context.Context, a *domain.Amenity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAmenityStore) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *mockAmenityStore) List(ctx context.Context) ([]domain.Amenity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *mockAmenityStore) Update(ctx context.Context, a *domain.Amenity) error {
	return m.Called(ctx, a).Error(0)
}

var (
	admin = policy.Principal{UserID: "admin-1", IsAdmin: true}
	guest = policy.Principal{UserID: "user-1"}
)

func TestService_Create(t *testing.T) {
	store := new(mockAmenityStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	a, err := svc.Create(context.Background(), admin, CreateAmenityRequest{Name: "Wi-Fi"})

	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)
	assert.NotEmpty(t, a.ID)
	store.AssertExpectations(t)
}

func TestService_Create_NonAdmin(t *testing.T) {
	store := new(mockAmenityStore)
	svc := NewService(store)

	_, err := svc.Create(context.Background(), guest, CreateAmenityRequest{Name: "Wi-Fi"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_NameTooLong(t *testing.T) {
	store := new(mockAmenityStore)
	svc := NewService(store)

	_, err := svc.Create(context.Background(), admin, CreateAmenityRequest{Name: strings.Repeat("x", 51)})
	assert.True(t, domain.IsValidation(err))
}

func TestService_Update(t *testing.T) {
	store := new(mockAmenityStore)
	store.On("GetByID", mock.Anything, "a-1").Return(&domain.Amenity{ID: "a-1", Name: "Wifi", Description: "slow"}, nil)
	store.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	name := "Wi-Fi"
	a, err := svc.Update(context.Background(), admin, "a-1", UpdateAmenityRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)
	assert.Equal(t, "slow", a.Description)
	store.AssertExpectations(t)
}

func TestService_Update_EmptyNameRejected(t *testing.T) {
	store := new(mockAmenityStore)
	store.On("GetByID", mock.Anything, "a-1").Return(&domain.Amenity{ID: "a-1", Name: "Wifi"}, nil)

	svc := NewService(store)
	empty := ""
	_, err := svc.Update(context.Background(), admin, "a-1", UpdateAmenityRequest{Name: &empty})

	assert.True(t, domain.IsValidation(err))
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	store := new(mockAmenityStore)
	store.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(store)
	_, err := svc.Update(context.Background(), admin, "missing", UpdateAmenityRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
