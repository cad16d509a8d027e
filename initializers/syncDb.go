package initializers

import (
	"log/slog"

	"github.com/bekosher/bekosher-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Establishment{},
		&models.Category{},
		&models.Product{},
		&models.OperatingHours{},
		&models.DeliveryHours{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}
	slog.Info("database synced successfully")
	return nil
}
