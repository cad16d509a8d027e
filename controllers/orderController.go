package controllers

import (
	"net/http"
	"time"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	orders OrderService
}

func NewOrderController(orders OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type orderItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID                uint                `json:"id"`
	UserID            uint                `json:"userId"`
	UserName          string              `json:"userName,omitempty"`
	EstablishmentID   uint                `json:"establishmentId"`
	EstablishmentName string              `json:"establishmentName,omitempty"`
	Total             decimal.Decimal     `json:"total"`
	DeliveryAddress   string              `json:"deliveryAddress"`
	Notes             *string             `json:"notes"`
	Status            models.OrderStatus  `json:"status"`
	Items             []orderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func formatOrder(order *models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, orderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}
	return orderResponse{
		ID:                order.ID,
		UserID:            order.UserID,
		UserName:          order.User.Name,
		EstablishmentID:   order.EstablishmentID,
		EstablishmentName: order.Establishment.Name,
		Total:             order.Total,
		DeliveryAddress:   order.DeliveryAddress,
		Notes:             order.Notes,
		Status:            order.Status,
		Items:             items,
		CreatedAt:         order.CreatedAt.UTC(),
		UpdatedAt:         order.UpdatedAt.UTC(),
	}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.CreateOrderInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	order, err := c.orders.CreateOrder(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   formatOrder(order),
	})
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}

	filter := services.OrderFilter{Page: pageFromQuery(ctx)}
	if raw := ctx.Query("status"); raw != "" {
		status, valid := services.ParseOrderStatus(raw)
		if !valid {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	orders, pagination, err := c.orders.ListOrders(ctx.Request.Context(), caller, filter)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	formatted := make([]orderResponse, 0, len(orders))
	for i := range orders {
		formatted = append(formatted, formatOrder(&orders[i]))
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders":   formatted,
		"metadata": pagination,
	})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	order, err := c.orders.GetOrder(ctx.Request.Context(), caller, orderID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": formatOrder(order)})
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input services.UpdateOrderStatusInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	order, err := c.orders.UpdateStatus(ctx.Request.Context(), caller, orderID, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   formatOrder(order),
	})
}
