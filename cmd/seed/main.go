// Command seed fills an empty database with an admin, a customer and two
// approved establishments, then prints development tokens for each account.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bekosher/bekosher-api/initializers"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type account struct {
	user            models.User
	password        string
	establishmentID uint
}

func main() {
	config, err := initializers.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	initializers.SetupLogger(config.LogLevel)

	db, err := initializers.ConnectToDB(config)
	if err != nil {
		slog.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		slog.Error("failed to migrate", "error", err)
		os.Exit(1)
	}

	var accounts []account
	err = db.Transaction(func(tx *gorm.DB) error {
		var seedErr error
		accounts, seedErr = seed(tx)
		return seedErr
	})
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	for _, acc := range accounts {
		token, err := utils.GenerateToken(config.JWTSecret, utils.Claims{
			UserID:          acc.user.ID,
			Email:           acc.user.Email,
			Role:            string(acc.user.Role),
			EstablishmentID: acc.establishmentID,
		}, 30*24*time.Hour)
		if err != nil {
			slog.Error("failed to sign token", "email", acc.user.Email, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%-14s %-28s password=%-15s token=%s\n", acc.user.Role, acc.user.Email, acc.password, token)
	}
}

func seed(tx *gorm.DB) ([]account, error) {
	admin, err := createUser(tx, "Administrador BeKosher", "admin@bekosher.com", "", "admin123", models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	customer, err := createUser(tx, "Cliente Teste", "cliente@bekosher.com", "(11) 97777-7777", "cliente123", models.RoleUser)
	if err != nil {
		return nil, err
	}

	restaurantUser, err := createUser(tx, "Restaurante Kosher Teste", "restaurante@bekosher.com", "(11) 99999-9999", "restaurante123", models.RoleEstablishment)
	if err != nil {
		return nil, err
	}
	restaurant := models.Establishment{
		UserID:           restaurantUser.ID,
		Name:             "Restaurante Kosher Delícias",
		Description:      "Um restaurante kosher de alta qualidade com pratos tradicionais e modernos.",
		Type:             models.EstablishmentRestaurant,
		Phone:            "(11) 99999-9999",
		Email:            restaurantUser.Email,
		Address:          "Rua das Delícias, 123 - Bela Vista, São Paulo - SP",
		ZipCode:          "01310-100",
		City:             "São Paulo",
		State:            "SP",
		Status:           models.EstablishmentApproved,
		HasDelivery:      true,
		DeliveryFee:      decimal.RequireFromString("5.90"),
		MinDeliveryOrder: decimal.RequireFromString("30.00"),
		DeliveryRadius:   decimal.RequireFromString("8.0"),
	}
	if err := tx.Create(&restaurant).Error; err != nil {
		return nil, err
	}

	bakeryUser, err := createUser(tx, "Padaria Kosher Teste", "padaria@bekosher.com", "(11) 88888-8888", "padaria123", models.RoleEstablishment)
	if err != nil {
		return nil, err
	}
	bakery := models.Establishment{
		UserID:      bakeryUser.ID,
		Name:        "Padaria Kosher Pão & Cia",
		Description: "Pães e doces kosher fresquinhos todos os dias",
		Type:        models.EstablishmentSweetShop,
		Phone:       "(11) 88888-8888",
		Email:       bakeryUser.Email,
		Address:     "Av. Paulista, 456 - Jardins, São Paulo - SP",
		ZipCode:     "01310-200",
		City:        "São Paulo",
		State:       "SP",
		Status:      models.EstablishmentApproved,
	}
	bakery.NormalizeDelivery()
	if err := tx.Create(&bakery).Error; err != nil {
		return nil, err
	}

	restaurantHours := []string{"22:00", "23:00", "23:00", "23:00", "23:00", "24:00", "24:00"}
	restaurantDelivery := []string{"22:00", "22:30", "22:30", "22:30", "22:30", "23:00", "23:00"}
	for day := 0; day < 7; day++ {
		if err := tx.Create(&models.OperatingHours{EstablishmentID: restaurant.ID, DayOfWeek: day, OpenTime: "11:00", CloseTime: restaurantHours[day], IsOpen: true}).Error; err != nil {
			return nil, err
		}
		if err := tx.Create(&models.DeliveryHours{EstablishmentID: restaurant.ID, DayOfWeek: day, OpenTime: "18:00", CloseTime: restaurantDelivery[day], IsOpen: true}).Error; err != nil {
			return nil, err
		}

		openTime, closeTime := "06:00", "20:00"
		if day == 0 || day == 6 {
			openTime, closeTime = "08:00", "18:00"
		}
		if err := tx.Create(&models.OperatingHours{EstablishmentID: bakery.ID, DayOfWeek: day, OpenTime: openTime, CloseTime: closeTime, IsOpen: true}).Error; err != nil {
			return nil, err
		}
	}

	menus := map[uint]map[string][]models.Product{
		restaurant.ID: {
			"Pratos principais": {
				{Name: "Schnitzel com purê", Price: decimal.RequireFromString("48.90"), SortOrder: 1},
				{Name: "Gefilte fish", Price: decimal.RequireFromString("39.50"), SortOrder: 2},
			},
			"Sopas": {
				{Name: "Sopa de kneidlach", Price: decimal.RequireFromString("24.00"), SortOrder: 1},
			},
		},
		bakery.ID: {
			"Pães": {
				{Name: "Chalá trançada", Price: decimal.RequireFromString("18.00"), SortOrder: 1},
				{Name: "Bagel", Price: decimal.RequireFromString("6.50"), SortOrder: 2},
			},
			"Doces": {
				{Name: "Rugelach (6 un.)", Price: decimal.RequireFromString("22.00"), SortOrder: 1},
			},
		},
	}
	for establishmentID, categories := range menus {
		for name, products := range categories {
			category := models.Category{EstablishmentID: establishmentID, Name: name}
			if err := tx.Create(&category).Error; err != nil {
				return nil, err
			}
			for _, product := range products {
				product.EstablishmentID = establishmentID
				product.CategoryID = category.ID
				product.IsKosher = true
				product.IsActive = true
				if err := tx.Create(&product).Error; err != nil {
					return nil, err
				}
			}
		}
	}

	return []account{
		{user: admin, password: "admin123"},
		{user: customer, password: "cliente123"},
		{user: restaurantUser, password: "restaurante123", establishmentID: restaurant.ID},
		{user: bakeryUser, password: "padaria123", establishmentID: bakery.ID},
	}, nil
}

func createUser(tx *gorm.DB, name, email, phone, password string, role models.Role) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Name: name, Email: email, Phone: phone, Password: string(hash), Role: role}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("create user %s: %w", email, err)
	}
	return user, nil
}
