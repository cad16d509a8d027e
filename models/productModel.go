package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	EstablishmentID uint      `json:"establishmentId" gorm:"index"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Products        []Product `json:"products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Product is a dish. IsKosher and IsActive carry no column default so that
// an explicit false is written as given.
type Product struct {
	gorm.Model
	EstablishmentID uint            `json:"establishmentId" gorm:"index"`
	CategoryID      uint            `json:"categoryId" gorm:"index"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL        string          `json:"imageUrl"`
	IsKosher        bool            `json:"isKosher" gorm:"not null"`
	IsActive        bool            `json:"isActive" gorm:"not null;index"`
	SortOrder       int             `json:"order" gorm:"default:0"`
}
