package repositories

import (
	"context"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

var _ services.MenuRepository = (*MenuRepository)(nil)

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindActiveProducts returns the products among ids that belong to the
// establishment and are active. Missing ids are simply absent.
func (r *MenuRepository) FindActiveProducts(ctx context.Context, establishmentID uint, ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND establishment_id = ? AND is_active = ?", ids, establishmentID, true).
		Find(&products).Error
	return products, err
}

func (r *MenuRepository) ListCategories(ctx context.Context, establishmentID uint, activeOnly bool) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			if activeOnly {
				db = db.Where("is_active = ?", true)
			}
			return db.Order("sort_order asc").Order("name asc")
		}).
		Order("name asc").
		Find(&categories).Error
	return categories, err
}

func (r *MenuRepository) FindCategory(ctx context.Context, establishmentID, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MenuRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Omit("Products").Create(category).Error
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Omit("Products").Save(category).Error
}

// DeleteCategory removes the category together with its products.
func (r *MenuRepository) DeleteCategory(ctx context.Context, establishmentID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND establishment_id = ?", id, establishmentID).
			Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND establishment_id = ?", id, establishmentID).
			Delete(&models.Category{}).Error
	})
}

func (r *MenuRepository) ListProducts(ctx context.Context, establishmentID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("sort_order asc").
		Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *MenuRepository) FindProduct(ctx context.Context, establishmentID, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MenuRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *MenuRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *MenuRepository) DeleteProduct(ctx context.Context, establishmentID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		Delete(&models.Product{}).Error
}
