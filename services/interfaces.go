package services

import (
	"context"

	"github.com/bekosher/bekosher-api/models"
)

// OrderScope restricts order reads to one user or one establishment. A zero
// field is not applied.
type OrderScope struct {
	UserID          uint
	EstablishmentID uint
}

type OrderFilter struct {
	Status *models.OrderStatus
	Page   Page
}

type EstablishmentFilter struct {
	Search      string
	HasDelivery bool
	Status      *models.EstablishmentStatus
	Page        Page
}

type OrderRepository interface {
	// CreateWithItems writes the order and its items in one transaction.
	CreateWithItems(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint, scope OrderScope) (*models.Order, error)
	List(ctx context.Context, scope OrderScope, filter OrderFilter) ([]models.Order, int64, error)
	// UpdateStatusIfCurrent changes the status only while it still equals
	// from, reporting whether a row was updated.
	UpdateStatusIfCurrent(ctx context.Context, id uint, from, to models.OrderStatus) (bool, error)
}

type EstablishmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Establishment, error)
	List(ctx context.Context, filter EstablishmentFilter) ([]models.Establishment, int64, error)
	Save(ctx context.Context, establishment *models.Establishment) error
	SaveProfile(ctx context.Context, establishment *models.Establishment, email string) error
	SetStatus(ctx context.Context, id uint, status models.EstablishmentStatus) error
}

type MenuRepository interface {
	FindActiveProducts(ctx context.Context, establishmentID uint, ids []uint) ([]models.Product, error)
	ListCategories(ctx context.Context, establishmentID uint, activeOnly bool) ([]models.Category, error)
	FindCategory(ctx context.Context, establishmentID, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, establishmentID, id uint) error
	ListProducts(ctx context.Context, establishmentID uint) ([]models.Product, error)
	FindProduct(ctx context.Context, establishmentID, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, establishmentID, id uint) error
}

// HoursRepository returns nil, nil from the Find methods when no row exists
// for the day.
type HoursRepository interface {
	FindOperatingHours(ctx context.Context, establishmentID uint, dayOfWeek int) (*models.OperatingHours, error)
	FindDeliveryHours(ctx context.Context, establishmentID uint, dayOfWeek int) (*models.DeliveryHours, error)
	ListOperatingHours(ctx context.Context, establishmentID uint) ([]models.OperatingHours, error)
	ListDeliveryHours(ctx context.Context, establishmentID uint) ([]models.DeliveryHours, error)
	ReplaceOperatingHours(ctx context.Context, establishmentID uint, hours []models.OperatingHours) error
	ReplaceDeliveryHours(ctx context.Context, establishmentID uint, hours []models.DeliveryHours) error
}

type MenuCache interface {
	Get(ctx context.Context, establishmentID uint) ([]models.Category, bool, error)
	Set(ctx context.Context, establishmentID uint, categories []models.Category) error
	Invalidate(ctx context.Context, establishmentID uint) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
}

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}
