package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type            string          `json:"type"`
	OrderID         uint            `json:"orderId"`
	UserID          uint            `json:"userId"`
	EstablishmentID uint            `json:"establishmentId"`
	Status          OrderStatus     `json:"status"`
	PreviousStatus  OrderStatus     `json:"previousStatus,omitempty"`
	Total           decimal.Decimal `json:"total"`
	Timestamp       time.Time       `json:"timestamp"`
}
