package services

import (
	"fmt"

	"github.com/bekosher/bekosher-api/models"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductID uint
	Quantity  int
}

type Quote struct {
	Items       []models.OrderItem
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// PriceOrder turns the requested line items into snapshotted order items
// and computes the order total.
//
// Every requested item must resolve to an active product of the
// establishment. The check is count based: if the resolved products do not
// match the requested items one to one the whole order is rejected, which
// also rejects a product id repeated within the same request.
func PriceOrder(establishment *models.Establishment, products []models.Product, items []LineItem) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, validationError("at least one item is required")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return Quote{}, validationError("quantity of product %d must be at least 1", item.ProductID)
		}
	}

	resolved := make(map[uint]models.Product, len(products))
	for _, product := range products {
		if product.EstablishmentID != establishment.ID || !product.IsActive {
			continue
		}
		resolved[product.ID] = product
	}
	if len(resolved) != len(items) {
		return Quote{}, validationError("one or more products were not found or are inactive")
	}

	quote := Quote{Items: make([]models.OrderItem, 0, len(items))}
	for _, item := range items {
		product, ok := resolved[item.ProductID]
		if !ok {
			return Quote{}, validationError("one or more products were not found or are inactive")
		}
		orderItem := models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		}
		quote.Subtotal = quote.Subtotal.Add(orderItem.Subtotal())
		quote.Items = append(quote.Items, orderItem)
	}

	quote.Total = quote.Subtotal
	if establishment.HasDelivery && establishment.DeliveryFee.IsPositive() {
		quote.DeliveryFee = establishment.DeliveryFee
		quote.Total = quote.Total.Add(establishment.DeliveryFee)
	}

	if establishment.MinDeliveryOrder.IsPositive() && quote.Total.LessThan(establishment.MinDeliveryOrder) {
		return Quote{}, &BusinessRuleError{
			Code:    CodeMinOrderNotMet,
			Message: fmt.Sprintf("minimum order of %s not reached", establishment.MinDeliveryOrder.StringFixed(2)),
			Details: map[string]any{
				"minOrder":     establishment.MinDeliveryOrder,
				"currentTotal": quote.Total,
			},
		}
	}

	return quote, nil
}
