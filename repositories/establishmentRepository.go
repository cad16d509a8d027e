package repositories

import (
	"context"
	"strings"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"gorm.io/gorm"
)

type EstablishmentRepository struct {
	db *gorm.DB
}

var _ services.EstablishmentRepository = (*EstablishmentRepository)(nil)

func NewEstablishmentRepository(db *gorm.DB) *EstablishmentRepository {
	return &EstablishmentRepository{db: db}
}

func (r *EstablishmentRepository) FindByID(ctx context.Context, id uint) (*models.Establishment, error) {
	var establishment models.Establishment
	if err := r.db.WithContext(ctx).First(&establishment, id).Error; err != nil {
		return nil, err
	}
	return &establishment, nil
}

func (r *EstablishmentRepository) List(ctx context.Context, filter services.EstablishmentFilter) ([]models.Establishment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Establishment{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.HasDelivery {
		query = query.Where("has_delivery = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var establishments []models.Establishment
	err := query.
		Order("name asc").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&establishments).Error
	if err != nil {
		return nil, 0, err
	}
	return establishments, total, nil
}

func (r *EstablishmentRepository) Save(ctx context.Context, establishment *models.Establishment) error {
	return r.db.WithContext(ctx).Omit("Categories", "OperatingHours", "DeliveryHours").Save(establishment).Error
}

// SaveProfile stores the establishment and copies the contact email onto
// the owning user in the same transaction.
func (r *EstablishmentRepository) SaveProfile(ctx context.Context, establishment *models.Establishment, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "OperatingHours", "DeliveryHours").Save(establishment).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", establishment.UserID).
			Update("email", email).Error
	})
}

func (r *EstablishmentRepository) SetStatus(ctx context.Context, id uint, status models.EstablishmentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
