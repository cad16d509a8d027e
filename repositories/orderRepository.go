package repositories

import (
	"context"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

var _ services.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if len(order.OrderItems) == 0 {
			return nil
		}
		for i := range order.OrderItems {
			order.OrderItems[i].OrderID = order.ID
		}
		return tx.Create(&order.OrderItems).Error
	})
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint, scope services.OrderScope) (*models.Order, error) {
	var order models.Order
	err := r.scoped(ctx, scope).
		Preload("OrderItems").
		Preload("User").
		Preload("Establishment").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, scope services.OrderScope, filter services.OrderFilter) ([]models.Order, int64, error) {
	query := r.scoped(ctx, scope).Model(&models.Order{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.
		Preload("OrderItems").
		Preload("User").
		Preload("Establishment").
		Order("created_at desc").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatusIfCurrent(ctx context.Context, id uint, from, to models.OrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *OrderRepository) scoped(ctx context.Context, scope services.OrderScope) *gorm.DB {
	query := r.db.WithContext(ctx)
	if scope.UserID != 0 {
		query = query.Where("orders.user_id = ?", scope.UserID)
	}
	if scope.EstablishmentID != 0 {
		query = query.Where("orders.establishment_id = ?", scope.EstablishmentID)
	}
	return query
}
