package models

import "gorm.io/gorm"

type Role string

const (
	RoleUser          Role = "USER"
	RoleEstablishment Role = "ESTABLISHMENT"
	RoleAdmin         Role = "ADMIN"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191"`
	Phone    string `json:"phone"`
	Password string `json:"-"`
	Role     Role   `json:"role" gorm:"size:20;default:USER"`
}
