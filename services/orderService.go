package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/bekosher/bekosher-api/models"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	EstablishmentID uint             `json:"establishmentId" binding:"required"`
	DeliveryAddress string           `json:"deliveryAddress" binding:"required"`
	Notes           *string          `json:"notes"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED PREPARING READY DELIVERED CANCELLED"`
}

type OrderService struct {
	orders         OrderRepository
	establishments EstablishmentRepository
	menu           MenuRepository
	publisher      OrderEventPublisher
}

// NewOrderService wires the order use cases. publisher may be nil.
func NewOrderService(orders OrderRepository, establishments EstablishmentRepository, menu MenuRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:         orders,
		establishments: establishments,
		menu:           menu,
		publisher:      publisher,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (*models.Order, error) {
	if !actor.Is(models.RoleUser) {
		return nil, forbidden("only users can place orders")
	}
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	establishment, err := s.establishments.FindByID(ctx, input.EstablishmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("establishment")
		}
		return nil, infra("load establishment", err)
	}
	if establishment.Status != models.EstablishmentApproved {
		return nil, notFound("establishment")
	}

	lineItems := make([]LineItem, 0, len(input.Items))
	productIDs := make([]uint, 0, len(input.Items))
	for _, item := range input.Items {
		lineItems = append(lineItems, LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.menu.FindActiveProducts(ctx, establishment.ID, productIDs)
	if err != nil {
		return nil, infra("load products", err)
	}

	quote, err := PriceOrder(establishment, products, lineItems)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:          actor.UserID,
		EstablishmentID: establishment.ID,
		Total:           quote.Total,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		Notes:           input.Notes,
		Status:          models.OrderPending,
		OrderItems:      quote.Items,
	}
	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, infra("create order", err)
	}
	order.Establishment = *establishment

	s.publish(ctx, models.OrderEvent{
		Type:            models.EventOrderCreated,
		OrderID:         order.ID,
		UserID:          order.UserID,
		EstablishmentID: order.EstablishmentID,
		Status:          order.Status,
		Total:           order.Total,
	})

	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, actor Actor, orderID uint, input UpdateOrderStatusInput) (*models.Order, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	target, ok := ParseOrderStatus(input.Status)
	if !ok {
		return nil, validationError("unknown order status %q", input.Status)
	}

	scope := OrderScope{EstablishmentID: actor.EstablishmentID}
	order, err := s.orders.FindByID(ctx, orderID, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order")
		}
		return nil, infra("load order", err)
	}

	current := order.Status
	if err := ValidateTransition(current, target); err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateStatusIfCurrent(ctx, order.ID, current, target)
	if err != nil {
		return nil, infra("update order status", err)
	}
	if !updated {
		latest, err := s.orders.FindByID(ctx, orderID, scope)
		if err != nil {
			return nil, infra("reload order", err)
		}
		return nil, &BusinessRuleError{
			Code:    CodeConcurrentModification,
			Message: "order status was changed by another request",
			Details: map[string]any{
				"currentStatus":   latest.Status,
				"allowedStatuses": AllowedTransitions(latest.Status),
			},
		}
	}

	order, err = s.orders.FindByID(ctx, orderID, scope)
	if err != nil {
		return nil, infra("reload order", err)
	}

	s.publish(ctx, models.OrderEvent{
		Type:            models.EventOrderStatusChanged,
		OrderID:         order.ID,
		UserID:          order.UserID,
		EstablishmentID: order.EstablishmentID,
		Status:          target,
		PreviousStatus:  current,
		Total:           order.Total,
	})

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, actor Actor, filter OrderFilter) ([]models.Order, Pagination, error) {
	filter.Page = filter.Page.Normalize()
	orders, total, err := s.orders.List(ctx, scopeFor(actor), filter)
	if err != nil {
		return nil, Pagination{}, infra("list orders", err)
	}
	return orders, NewPagination(filter.Page, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, actor Actor, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID, scopeFor(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order")
		}
		return nil, infra("load order", err)
	}
	return order, nil
}

// scopeFor limits users to their own orders and establishments to the
// orders placed with them. Anyone else falls back to their own orders.
func scopeFor(actor Actor) OrderScope {
	if actor.Is(models.RoleEstablishment) && actor.EstablishmentID != 0 {
		return OrderScope{EstablishmentID: actor.EstablishmentID}
	}
	return OrderScope{UserID: actor.UserID}
}

func (s *OrderService) publish(ctx context.Context, event models.OrderEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		slog.Warn("failed to publish order event", "type", event.Type, "order_id", event.OrderID, "error", err)
	}
}

func validateCreateOrder(input CreateOrderInput) error {
	var fields []FieldError
	if input.EstablishmentID == 0 {
		fields = append(fields, FieldError{Field: "establishmentId", Message: "establishment id is required"})
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		fields = append(fields, FieldError{Field: "deliveryAddress", Message: "delivery address is required"})
	}
	if len(input.Items) == 0 {
		fields = append(fields, FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range input.Items {
		if item.ProductID == 0 {
			fields = append(fields, FieldError{Field: fieldIndex("items", i, "productId"), Message: "product id is required"})
		}
		if item.Quantity < 1 {
			fields = append(fields, FieldError{Field: fieldIndex("items", i, "quantity"), Message: "quantity must be at least 1"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid order", Fields: fields}
	}
	return nil
}
