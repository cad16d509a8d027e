package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bekosher/bekosher-api/controllers"
	"github.com/bekosher/bekosher-api/initializers"
	"github.com/bekosher/bekosher-api/middlewares"
	"github.com/bekosher/bekosher-api/mocks"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/routes"
	"github.com/bekosher/bekosher-api/services"
	"github.com/bekosher/bekosher-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secret = "test-secret-with-enough-length"

var (
	customer   = services.Actor{UserID: 7, Email: "cliente@bekosher.com", Role: models.RoleUser}
	restaurant = services.Actor{UserID: 3, Email: "restaurante@bekosher.com", Role: models.RoleEstablishment, EstablishmentID: 1}
	admin      = services.Actor{UserID: 1, Email: "admin@bekosher.com", Role: models.RoleAdmin}
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := initializers.ConfigureBinding(); err != nil {
		panic(err)
	}
}

type testServer struct {
	router         *gin.Engine
	orders         *mocks.OrderService
	establishments *mocks.EstablishmentService
	hours          *mocks.HoursService
	menu           *mocks.MenuService
	admin          *mocks.AdminService
	address        *mocks.AddressLookup
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		router:         gin.New(),
		orders:         mocks.NewOrderService(t),
		establishments: mocks.NewEstablishmentService(t),
		hours:          mocks.NewHoursService(t),
		menu:           mocks.NewMenuService(t),
		admin:          mocks.NewAdminService(t),
		address:        mocks.NewAddressLookup(t),
	}
	auth := middlewares.RequireAuth(secret)
	routes.DefaultRoutes(s.router)
	routes.PublicRoutes(s.router, controllers.NewEstablishmentController(s.establishments), controllers.NewAddressController(s.address))
	routes.OrderRoutes(s.router, controllers.NewOrderController(s.orders), auth)
	routes.EstablishmentRoutes(s.router,
		controllers.NewProfileController(s.establishments),
		controllers.NewHoursController(s.hours),
		controllers.NewProductController(s.menu),
		auth,
	)
	routes.AdminRoutes(s.router, controllers.NewAdminController(s.admin), auth)
	return s
}

func (s *testServer) do(t *testing.T, method, path, body string, actor *services.Actor) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		token, err := utils.GenerateToken(secret, utils.Claims{
			UserID: actor.UserID, Email: actor.Email, Role: string(actor.Role), EstablishmentID: actor.EstablishmentID,
		}, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestGetHome(t *testing.T) {
	rec, body := newTestServer(t).do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["message"], "BeKosher")
}

func TestCreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		input := services.CreateOrderInput{
			EstablishmentID: 1,
			DeliveryAddress: "Rua Augusta, 100",
			Items:           []services.OrderItemInput{{ProductID: 10, Quantity: 2}},
		}
		order := &models.Order{
			Model:           gorm.Model{ID: 500},
			UserID:          7,
			User:            models.User{Name: "Cliente"},
			EstablishmentID: 1,
			Establishment:   models.Establishment{Name: "Delícias"},
			Status:          models.OrderPending,
			Total:           decimal.RequireFromString("103.70"),
			OrderItems: []models.OrderItem{
				{ProductID: 10, ProductName: "Schnitzel", Price: decimal.RequireFromString("48.90"), Quantity: 2},
			},
		}
		s.orders.On("CreateOrder", mock.Anything, customer, input).Return(order, nil).Once()

		rec, body := s.do(t, http.MethodPost, "/api/orders",
			`{"establishmentId":1,"deliveryAddress":"Rua Augusta, 100","items":[{"productId":10,"quantity":2}]}`, &customer)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := body["order"].(map[string]any)
		assert.Equal(t, float64(500), created["id"])
		assert.Equal(t, "PENDING", created["status"])
		assert.Equal(t, "Cliente", created["userName"])
		assert.Equal(t, "Delícias", created["establishmentName"])
		items := created["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "Schnitzel", items[0].(map[string]any)["productName"])
	})

	t.Run("unknown_field_rejected", func(t *testing.T) {
		s := newTestServer(t)
		rec, body := s.do(t, http.MethodPost, "/api/orders",
			`{"establishmentId":1,"deliveryAddress":"Rua","items":[{"productId":10,"quantity":1}],"total":"0.01"}`, &customer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["message"], "unknown field")
	})

	t.Run("empty_body", func(t *testing.T) {
		rec, body := newTestServer(t).do(t, http.MethodPost, "/api/orders", "", &customer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body is required", body["message"])
	})

	t.Run("binding_rules", func(t *testing.T) {
		s := newTestServer(t)
		rec, body := s.do(t, http.MethodPost, "/api/orders",
			`{"establishmentId":1,"deliveryAddress":"Rua","items":[{"productId":10,"quantity":0}]}`, &customer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := body["errors"].([]any)
		require.NotEmpty(t, fields)
		assert.Equal(t, "items.0.quantity", fields[0].(map[string]any)["field"])
	})

	t.Run("minimum_order_details", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.On("CreateOrder", mock.Anything, customer, mock.Anything).Return(nil, &services.BusinessRuleError{
			Code:    services.CodeMinOrderNotMet,
			Message: "minimum order of 30.00 not reached",
			Details: map[string]any{"minOrder": 30, "currentTotal": 18.9},
		}).Once()

		rec, body := s.do(t, http.MethodPost, "/api/orders",
			`{"establishmentId":1,"deliveryAddress":"Rua","items":[{"productId":10,"quantity":1}]}`, &customer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MIN_ORDER_NOT_MET", body["code"])
		assert.Equal(t, float64(30), body["minOrder"])
		assert.Equal(t, 18.9, body["currentTotal"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec, _ := newTestServer(t).do(t, http.MethodPost, "/api/orders", `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "concurrent_modification", err: &services.BusinessRuleError{Code: services.CodeConcurrentModification, Message: "changed"}, expected: http.StatusConflict},
		{name: "invalid_transition", err: &services.BusinessRuleError{Code: services.CodeInvalidTransition, Message: "invalid"}, expected: http.StatusBadRequest},
		{name: "not_found", err: &services.NotFoundError{Resource: "order"}, expected: http.StatusNotFound},
		{name: "forbidden", err: &services.AuthorizationError{Message: "nope"}, expected: http.StatusForbidden},
		{name: "storage", err: &services.InfrastructureError{Op: "update", Err: errors.New("boom")}, expected: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestServer(t)
			s.orders.On("UpdateStatus", mock.Anything, restaurant, uint(42), services.UpdateOrderStatusInput{Status: "CONFIRMED"}).
				Return(nil, testCase.err).Once()

			rec, _ := s.do(t, http.MethodPatch, "/api/orders/42/status", `{"status":"CONFIRMED"}`, &restaurant)
			assert.Equal(t, testCase.expected, rec.Code)
		})
	}

	t.Run("unknown_status_value", func(t *testing.T) {
		rec, _ := newTestServer(t).do(t, http.MethodPatch, "/api/orders/42/status", `{"status":"SHIPPED"}`, &restaurant)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad_id", func(t *testing.T) {
		rec, _ := newTestServer(t).do(t, http.MethodPatch, "/api/orders/abc/status", `{"status":"CONFIRMED"}`, &restaurant)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrders_StatusFilter(t *testing.T) {
	s := newTestServer(t)
	ready := models.OrderReady
	s.orders.On("ListOrders", mock.Anything, restaurant, services.OrderFilter{Status: &ready, Page: services.Page{Page: 2, Limit: 5}}).
		Return([]models.Order{}, services.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, nil).Once()

	rec, body := s.do(t, http.MethodGet, "/api/orders?status=READY&page=2&limit=5", "", &restaurant)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6), body["metadata"].(map[string]any)["total"])

	rec, _ = s.do(t, http.MethodGet, "/api/orders?status=LOST", "", &restaurant)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstablishmentRoutes_RequireEstablishmentRole(t *testing.T) {
	rec, _ := newTestServer(t).do(t, http.MethodGet, "/api/establishment/profile", "", &customer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReplaceOperatingHours(t *testing.T) {
	t.Run("invalid_clock", func(t *testing.T) {
		rec, body := newTestServer(t).do(t, http.MethodPost, "/api/establishment/operating-hours",
			`{"hours":[{"dayOfWeek":1,"openTime":"9:00","closeTime":"17:00","isOpen":true}]}`, &restaurant)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "hours.0.openTime", body["errors"].([]any)[0].(map[string]any)["field"])
	})

	t.Run("midnight_crossing_message", func(t *testing.T) {
		s := newTestServer(t)
		s.hours.On("ReplaceOperatingHours", mock.Anything, restaurant, mock.Anything).Return(nil, &services.ValidationError{
			Message: "invalid hours",
			Fields:  []services.FieldError{{Field: "hours.0.closeTime", Message: "close at 24:00 instead"}},
		}).Once()

		rec, body := s.do(t, http.MethodPost, "/api/establishment/operating-hours",
			`{"hours":[{"dayOfWeek":5,"openTime":"22:00","closeTime":"02:00","isOpen":true}]}`, &restaurant)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid hours", body["message"])
	})

	t.Run("replaced", func(t *testing.T) {
		s := newTestServer(t)
		s.hours.On("ReplaceOperatingHours", mock.Anything, restaurant, mock.MatchedBy(func(input services.HoursInput) bool {
			return len(input.Hours) == 1 && *input.Hours[0].DayOfWeek == 0 && input.Hours[0].CloseTime == "24:00"
		})).Return([]models.OperatingHours{{DayOfWeek: 0, OpenTime: "11:00", CloseTime: "24:00", IsOpen: true}}, nil).Once()

		rec, body := s.do(t, http.MethodPost, "/api/establishment/operating-hours",
			`{"hours":[{"dayOfWeek":0,"openTime":"11:00","closeTime":"24:00","isOpen":true}]}`, &restaurant)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, body["operatingHours"], 1)
	})
}

func TestGetAvailability(t *testing.T) {
	s := newTestServer(t)
	open := true
	at := time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)
	s.establishments.On("Availability", mock.Anything, uint(1), mock.MatchedBy(func(value *time.Time) bool {
		return value != nil && value.Equal(at)
	})).Return(services.Availability{DayOfWeek: 1, CurrentTime: "15:00", IsOpen: true, IsDeliveryOpen: &open}, nil).Once()

	rec, body := s.do(t, http.MethodGet, "/api/establishments/1/availability?at=2024-06-03T15:00:00Z", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["isOpen"])
	assert.Equal(t, true, body["isDeliveryOpen"])

	rec, _ = s.do(t, http.MethodGet, "/api/establishments/1/availability?at=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailability_NoDeliveryIsNull(t *testing.T) {
	s := newTestServer(t)
	s.establishments.On("Availability", mock.Anything, uint(2), (*time.Time)(nil)).
		Return(services.Availability{DayOfWeek: 1, CurrentTime: "15:00", IsOpen: true}, nil).Once()

	rec, body := s.do(t, http.MethodGet, "/api/establishments/2/availability", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	value, present := body["isDeliveryOpen"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestGetMenuQRCode(t *testing.T) {
	s := newTestServer(t)
	s.establishments.On("MenuQRCode", mock.Anything, uint(1)).Return([]byte("\x89PNG"), nil).Once()

	rec, _ := s.do(t, http.MethodGet, "/api/establishments/1/qrcode", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestGetAddress(t *testing.T) {
	s := newTestServer(t)
	s.address.On("Lookup", mock.Anything, "01310100").Return(&utils.Address{City: "São Paulo", State: "SP"}, nil).Once()
	s.address.On("Lookup", mock.Anything, "99999999").Return(nil, utils.ErrCEPNotFound).Once()

	rec, body := s.do(t, http.MethodGet, "/api/address/01310100", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SP", body["address"].(map[string]any)["state"])

	rec, _ = s.do(t, http.MethodGet, "/api/address/99999999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDish(t *testing.T) {
	s := newTestServer(t)
	s.menu.On("CreateProduct", mock.Anything, restaurant, mock.MatchedBy(func(input services.ProductInput) bool {
		return input.Name == "Kugel" && input.Price.Equal(decimal.RequireFromString("32.5")) && input.IsActive != nil && !*input.IsActive
	})).Return(&models.Product{Name: "Kugel"}, nil).Once()

	rec, _ := s.do(t, http.MethodPost, "/api/establishment/dish",
		`{"name":"Kugel","price":32.50,"categoryId":5,"isActive":false}`, &restaurant)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = s.do(t, http.MethodPost, "/api/establishment/dish", `{"name":"Kugel","categoryId":5}`, &restaurant)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	pending := models.EstablishmentPending
	s.admin.On("ListEstablishments", mock.Anything, admin, &pending, services.Page{Page: 1, Limit: 10}).
		Return([]models.Establishment{{Name: "Nova"}}, services.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, nil).Once()
	s.admin.On("Approve", mock.Anything, admin, uint(4)).Return(nil).Once()

	rec, _ := s.do(t, http.MethodGet, "/api/admin/establishments?status=PENDING", "", &admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodPatch, "/api/admin/establishments/4/approve", "", &admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodPatch, "/api/admin/establishments/4/approve", "", &restaurant)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
