package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bekosher/bekosher-api/mocks"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type establishmentServiceDeps struct {
	establishments *mocks.EstablishmentRepository
	menu           *mocks.MenuRepository
	cache          *mocks.MenuCache
	hours          *mocks.HoursRepository
	qr             *mocks.QRGenerator
}

func newEstablishmentService(t *testing.T) (*services.EstablishmentService, establishmentServiceDeps) {
	deps := establishmentServiceDeps{
		establishments: mocks.NewEstablishmentRepository(t),
		menu:           mocks.NewMenuRepository(t),
		cache:          mocks.NewMenuCache(t),
		hours:          mocks.NewHoursRepository(t),
		qr:             mocks.NewQRGenerator(t),
	}
	evaluator := services.NewAvailabilityEvaluator(deps.hours, time.UTC).
		WithClock(func() time.Time { return monday("12:00") })
	svc := services.NewEstablishmentService(deps.establishments, deps.menu, deps.cache, evaluator, deps.qr, "https://bekosher.com/")
	return svc, deps
}

func TestEstablishmentService_Menu(t *testing.T) {
	ctx := context.Background()
	categories := []models.Category{
		{Model: gorm.Model{ID: 5}, Name: "Sopas", Products: []models.Product{product(1, 1, "Sopa", "24.00")}},
		{Model: gorm.Model{ID: 6}, Name: "Pratos", Products: []models.Product{product(2, 1, "A", "40.00"), product(3, 1, "B", "42.00")}},
	}

	t.Run("cache_miss_loads_and_stores", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
		deps.hours.On("FindOperatingHours", ctx, uint(1), 1).Return(operating("11:00", "23:00", true), nil).Once()
		deps.hours.On("FindDeliveryHours", ctx, uint(1), 1).Return((*models.DeliveryHours)(nil), nil).Once()
		deps.cache.On("Get", ctx, uint(1)).Return(nil, false, nil).Once()
		deps.menu.On("ListCategories", ctx, uint(1), true).Return(categories, nil).Once()
		deps.cache.On("Set", ctx, uint(1), categories).Return(nil).Once()

		menu, err := svc.Menu(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, menu.TotalProducts)
		assert.Len(t, menu.Categories, 2)
		assert.True(t, menu.Establishment.IsOpen)
		require.NotNil(t, menu.Establishment.IsDeliveryOpen)
		assert.False(t, *menu.Establishment.IsDeliveryOpen)
	})

	t.Run("cache_hit_skips_database", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
		deps.hours.On("FindOperatingHours", ctx, uint(1), 1).Return((*models.OperatingHours)(nil), nil).Once()
		deps.hours.On("FindDeliveryHours", ctx, uint(1), 1).Return((*models.DeliveryHours)(nil), nil).Once()
		deps.cache.On("Get", ctx, uint(1)).Return(categories, true, nil).Once()

		menu, err := svc.Menu(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, menu.TotalProducts)
		assert.False(t, menu.Establishment.IsOpen)
	})

	t.Run("cache_errors_fall_through", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
		deps.hours.On("FindOperatingHours", ctx, uint(1), 1).Return((*models.OperatingHours)(nil), nil).Once()
		deps.hours.On("FindDeliveryHours", ctx, uint(1), 1).Return((*models.DeliveryHours)(nil), nil).Once()
		deps.cache.On("Get", ctx, uint(1)).Return(nil, false, errors.New("redis down")).Once()
		deps.menu.On("ListCategories", ctx, uint(1), true).Return(categories, nil).Once()
		deps.cache.On("Set", ctx, uint(1), categories).Return(errors.New("redis down")).Once()

		_, err := svc.Menu(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("unapproved_is_not_found", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		establishment := deliveringEstablishment()
		establishment.Status = models.EstablishmentRejected
		deps.establishments.On("FindByID", ctx, uint(1)).Return(establishment, nil).Once()

		_, err := svc.Menu(ctx, 1)
		var notFoundErr *services.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestEstablishmentService_ListEstablishments(t *testing.T) {
	ctx := context.Background()
	svc, deps := newEstablishmentService(t)
	approved := models.EstablishmentApproved

	pickup := &models.Establishment{Model: gorm.Model{ID: 2}, Name: "Padaria", Status: approved}
	deps.establishments.On("List", ctx, services.EstablishmentFilter{
		Search: "pad", Status: &approved, Page: services.Page{Page: 1, Limit: 10},
	}).Return([]models.Establishment{*pickup}, int64(1), nil).Once()
	deps.hours.On("FindOperatingHours", ctx, uint(2), 1).Return((*models.OperatingHours)(nil), nil).Once()

	views, pagination, err := svc.ListEstablishments(ctx, "  pad ", false, services.Page{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Padaria", views[0].Name)
	assert.Nil(t, views[0].IsDeliveryOpen)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestEstablishmentService_MenuQRCode(t *testing.T) {
	ctx := context.Background()
	svc, deps := newEstablishmentService(t)
	deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
	deps.qr.On("Generate", "https://bekosher.com/establishments/1/menu").Return([]byte("png"), nil).Once()

	png, err := svc.MenuQRCode(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestEstablishmentService_UpdateDeliverySettings(t *testing.T) {
	ctx := context.Background()
	fee := decimal.RequireFromString("7.50")
	minOrder := decimal.RequireFromString("40")
	radius := decimal.RequireFromString("5")

	t.Run("disabling_delivery_zeroes_amounts", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
		deps.establishments.On("Save", ctx, mock.MatchedBy(func(e *models.Establishment) bool {
			return !e.HasDelivery && e.DeliveryFee.IsZero() && e.MinDeliveryOrder.IsZero() && e.DeliveryRadius.IsZero()
		})).Return(nil).Once()

		disabled := false
		establishment, err := svc.UpdateDeliverySettings(ctx, restaurantUser, services.DeliverySettingsInput{
			HasDelivery: &disabled, DeliveryFee: &fee, MinDeliveryOrder: &minOrder, DeliveryRadius: &radius,
		})
		require.NoError(t, err)
		assert.True(t, establishment.DeliveryFee.IsZero())
	})

	t.Run("omitted_amounts_are_kept", func(t *testing.T) {
		svc, deps := newEstablishmentService(t)
		deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
		deps.establishments.On("Save", ctx, mock.Anything).Return(nil).Once()

		enabled := true
		establishment, err := svc.UpdateDeliverySettings(ctx, restaurantUser, services.DeliverySettingsInput{
			HasDelivery: &enabled, DeliveryRadius: &radius,
		})
		require.NoError(t, err)
		assert.True(t, establishment.DeliveryFee.Equal(dec("5.90")))
		assert.True(t, establishment.MinDeliveryOrder.Equal(dec("30.00")))
		assert.True(t, establishment.DeliveryRadius.Equal(radius))
	})

	t.Run("radius_over_limit", func(t *testing.T) {
		svc, _ := newEstablishmentService(t)
		enabled := true
		tooFar := decimal.NewFromInt(51)

		_, err := svc.UpdateDeliverySettings(ctx, restaurantUser, services.DeliverySettingsInput{HasDelivery: &enabled, DeliveryRadius: &tooFar})
		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "deliveryRadius", validationErr.Fields[0].Field)
	})

	t.Run("users_are_forbidden", func(t *testing.T) {
		svc, _ := newEstablishmentService(t)
		enabled := true

		_, err := svc.UpdateDeliverySettings(ctx, customer, services.DeliverySettingsInput{HasDelivery: &enabled})
		var authErr *services.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestEstablishmentService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, deps := newEstablishmentService(t)

	current := deliveringEstablishment()
	current.UserID = 3
	deps.establishments.On("FindByID", ctx, uint(1)).Return(current, nil).Once()
	deps.establishments.On("SaveProfile", ctx, mock.MatchedBy(func(e *models.Establishment) bool {
		return e.Address == "Rua Augusta, 100, Consolação" &&
			e.ZipCode == "01305-000" &&
			e.Type == models.EstablishmentBuffet &&
			string(e.Certification) == `{"agency":"BDK"}`
	}), "novo@bekosher.com").Return(nil).Once()

	establishment, err := svc.UpdateProfile(ctx, restaurantUser, services.UpdateProfileInput{
		Name:          "Delícias",
		Phone:         "(11) 90000-0000",
		Street:        "Rua Augusta",
		Number:        "100",
		Neighborhood:  "Consolação",
		City:          "São Paulo",
		State:         "SP",
		Cep:           "01305-000",
		Email:         "novo@bekosher.com",
		Type:          models.EstablishmentBuffet,
		Certification: []byte(`{"agency":"BDK"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Delícias", establishment.Name)
}

func TestEstablishmentService_UpdateProfile_KeepsDeliveryAmounts(t *testing.T) {
	ctx := context.Background()
	svc, deps := newEstablishmentService(t)

	deps.establishments.On("FindByID", ctx, uint(1)).Return(deliveringEstablishment(), nil).Once()
	deps.establishments.On("SaveProfile", ctx, mock.MatchedBy(func(e *models.Establishment) bool {
		return e.HasDelivery && e.DeliveryFee.Equal(dec("5.90")) && e.MinDeliveryOrder.Equal(dec("30.00"))
	}), "contato@bekosher.com").Return(nil).Once()

	enabled := true
	establishment, err := svc.UpdateProfile(ctx, restaurantUser, services.UpdateProfileInput{
		Name:        "Delícias",
		Phone:       "(11) 90000-0000",
		Street:      "Rua Augusta",
		Number:      "100",
		City:        "São Paulo",
		State:       "SP",
		Cep:         "01305-000",
		Email:       "contato@bekosher.com",
		HasDelivery: &enabled,
	})
	require.NoError(t, err)
	assert.Equal(t, "5.9", establishment.DeliveryFee.String())
	assert.Equal(t, "30", establishment.MinDeliveryOrder.String())
}
