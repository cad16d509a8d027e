package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EstablishmentStatus string

const (
	EstablishmentPending  EstablishmentStatus = "PENDING"
	EstablishmentApproved EstablishmentStatus = "APPROVED"
	EstablishmentRejected EstablishmentStatus = "REJECTED"
)

type EstablishmentType string

const (
	EstablishmentRestaurant EstablishmentType = "RESTAURANT"
	EstablishmentBuffet     EstablishmentType = "BUFFET"
	EstablishmentSweetShop  EstablishmentType = "SWEET_SHOP"
	EstablishmentOther      EstablishmentType = "OTHER"
)

type Establishment struct {
	gorm.Model
	UserID           uint                `json:"userId" gorm:"uniqueIndex"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Type             EstablishmentType   `json:"type" gorm:"size:20;default:RESTAURANT"`
	Phone            string              `json:"phone"`
	Email            string              `json:"email"`
	Address          string              `json:"address"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	ZipCode          string              `json:"zipCode"`
	LogoURL          string              `json:"logoUrl"`
	Status           EstablishmentStatus `json:"status" gorm:"size:20;default:PENDING;index"`
	HasDelivery      bool                `json:"hasDelivery"`
	DeliveryFee      decimal.Decimal     `json:"deliveryFee" gorm:"type:decimal(10,2);not null;default:0"`
	MinDeliveryOrder decimal.Decimal     `json:"minDeliveryOrder" gorm:"type:decimal(10,2);not null;default:0"`
	DeliveryRadius   decimal.Decimal     `json:"deliveryRadius" gorm:"type:decimal(6,2);not null;default:0"`
	Certification    datatypes.JSON      `json:"certification"`
	Categories       []Category          `json:"categories,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	OperatingHours   []OperatingHours    `json:"operatingHours,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	DeliveryHours    []DeliveryHours     `json:"deliveryHours,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// NormalizeDelivery zeroes the delivery fields of establishments that do
// not deliver. It must run before every write of delivery settings.
func (e *Establishment) NormalizeDelivery() {
	if e.HasDelivery {
		return
	}
	e.DeliveryFee = decimal.Zero
	e.MinDeliveryOrder = decimal.Zero
	e.DeliveryRadius = decimal.Zero
}
