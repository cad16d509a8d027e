package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	gorm.Model
	UserID          uint            `json:"userId" gorm:"index"`
	User            User            `json:"-"`
	EstablishmentID uint            `json:"establishmentId" gorm:"index"`
	Establishment   Establishment   `json:"-"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Notes           *string         `json:"notes"`
	Status          OrderStatus     `json:"status" gorm:"size:20;default:PENDING;index"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem keeps a copy of the product name and price taken when the
// order was placed; later product edits do not touch it.
type OrderItem struct {
	gorm.Model
	OrderID     uint            `json:"orderId" gorm:"index"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
