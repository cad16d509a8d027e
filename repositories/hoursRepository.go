package repositories

import (
	"context"
	"errors"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"gorm.io/gorm"
)

type HoursRepository struct {
	db *gorm.DB
}

var _ services.HoursRepository = (*HoursRepository)(nil)

func NewHoursRepository(db *gorm.DB) *HoursRepository {
	return &HoursRepository{db: db}
}

func (r *HoursRepository) FindOperatingHours(ctx context.Context, establishmentID uint, dayOfWeek int) (*models.OperatingHours, error) {
	var hours models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND day_of_week = ?", establishmentID, dayOfWeek).
		First(&hours).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *HoursRepository) FindDeliveryHours(ctx context.Context, establishmentID uint, dayOfWeek int) (*models.DeliveryHours, error) {
	var hours models.DeliveryHours
	err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND day_of_week = ?", establishmentID, dayOfWeek).
		First(&hours).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *HoursRepository) ListOperatingHours(ctx context.Context, establishmentID uint) ([]models.OperatingHours, error) {
	var hours []models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("day_of_week asc").
		Find(&hours).Error
	return hours, err
}

func (r *HoursRepository) ListDeliveryHours(ctx context.Context, establishmentID uint) ([]models.DeliveryHours, error) {
	var hours []models.DeliveryHours
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("day_of_week asc").
		Find(&hours).Error
	return hours, err
}

// ReplaceOperatingHours hard deletes the current week so the unique day
// index is free for the new rows.
func (r *HoursRepository) ReplaceOperatingHours(ctx context.Context, establishmentID uint, hours []models.OperatingHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("establishment_id = ?", establishmentID).
			Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

func (r *HoursRepository) ReplaceDeliveryHours(ctx context.Context, establishmentID uint, hours []models.DeliveryHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("establishment_id = ?", establishmentID).
			Delete(&models.DeliveryHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}
