package controllers

import (
	"context"
	"time"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/bekosher/bekosher-api/utils"
)

type OrderService interface {
	CreateOrder(ctx context.Context, actor services.Actor, input services.CreateOrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, actor services.Actor, orderID uint, input services.UpdateOrderStatusInput) (*models.Order, error)
	ListOrders(ctx context.Context, actor services.Actor, filter services.OrderFilter) ([]models.Order, services.Pagination, error)
	GetOrder(ctx context.Context, actor services.Actor, orderID uint) (*models.Order, error)
}

type EstablishmentService interface {
	ListEstablishments(ctx context.Context, search string, hasDelivery bool, page services.Page) ([]services.EstablishmentView, services.Pagination, error)
	Menu(ctx context.Context, id uint) (*services.MenuView, error)
	Availability(ctx context.Context, id uint, at *time.Time) (services.Availability, error)
	MenuQRCode(ctx context.Context, id uint) ([]byte, error)
	Profile(ctx context.Context, actor services.Actor) (*models.Establishment, error)
	UpdateProfile(ctx context.Context, actor services.Actor, input services.UpdateProfileInput) (*models.Establishment, error)
	UpdateDeliverySettings(ctx context.Context, actor services.Actor, input services.DeliverySettingsInput) (*models.Establishment, error)
}

type HoursService interface {
	OperatingHours(ctx context.Context, actor services.Actor) ([]models.OperatingHours, error)
	DeliveryHours(ctx context.Context, actor services.Actor) ([]models.DeliveryHours, error)
	ReplaceOperatingHours(ctx context.Context, actor services.Actor, input services.HoursInput) ([]models.OperatingHours, error)
	ReplaceDeliveryHours(ctx context.Context, actor services.Actor, input services.HoursInput) ([]models.DeliveryHours, error)
}

type MenuService interface {
	Categories(ctx context.Context, actor services.Actor) ([]models.Category, error)
	CreateCategory(ctx context.Context, actor services.Actor, input services.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, actor services.Actor, id uint, input services.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, actor services.Actor, id uint) error
	Products(ctx context.Context, actor services.Actor) ([]models.Product, error)
	CreateProduct(ctx context.Context, actor services.Actor, input services.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, actor services.Actor, id uint, input services.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, actor services.Actor, id uint) error
}

type AdminService interface {
	ListEstablishments(ctx context.Context, actor services.Actor, status *models.EstablishmentStatus, page services.Page) ([]models.Establishment, services.Pagination, error)
	Approve(ctx context.Context, actor services.Actor, id uint) error
	Reject(ctx context.Context, actor services.Actor, id uint) error
}

type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (*utils.Address, error)
}

var (
	_ OrderService         = (*services.OrderService)(nil)
	_ EstablishmentService = (*services.EstablishmentService)(nil)
	_ HoursService         = (*services.HoursService)(nil)
	_ MenuService          = (*services.MenuService)(nil)
	_ AdminService         = (*services.AdminService)(nil)
	_ AddressLookup        = (*utils.CEPClient)(nil)
)
