package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bekosher/bekosher-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  uint             `json:"categoryId" binding:"required"`
	Image       string           `json:"image"`
	IsKosher    *bool            `json:"isKosher"`
	IsActive    *bool            `json:"isActive"`
	Order       int              `json:"order" binding:"min=0"`
}

// MenuService manages the categories and dishes of the calling
// establishment. Every write drops the cached public menu.
type MenuService struct {
	menu  MenuRepository
	cache MenuCache
}

func NewMenuService(menu MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{menu: menu, cache: cache}
}

func (s *MenuService) Categories(ctx context.Context, actor Actor) ([]models.Category, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	categories, err := s.menu.ListCategories(ctx, actor.EstablishmentID, false)
	return categories, infra("list categories", err)
}

func (s *MenuService) CreateCategory(ctx context.Context, actor Actor, input CategoryInput) (*models.Category, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, validationError("name is required")
	}
	category := &models.Category{
		EstablishmentID: actor.EstablishmentID,
		Name:            input.Name,
		Description:     input.Description,
	}
	if err := s.menu.CreateCategory(ctx, category); err != nil {
		return nil, infra("create category", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return category, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, actor Actor, id uint, input CategoryInput) (*models.Category, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, validationError("name is required")
	}
	category, err := s.category(ctx, actor.EstablishmentID, id)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Description = input.Description
	if err := s.menu.UpdateCategory(ctx, category); err != nil {
		return nil, infra("update category", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return category, nil
}

func (s *MenuService) DeleteCategory(ctx context.Context, actor Actor, id uint) error {
	if err := requireEstablishmentActor(actor); err != nil {
		return err
	}
	if _, err := s.category(ctx, actor.EstablishmentID, id); err != nil {
		return err
	}
	if err := s.menu.DeleteCategory(ctx, actor.EstablishmentID, id); err != nil {
		return infra("delete category", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return nil
}

func (s *MenuService) Products(ctx context.Context, actor Actor) ([]models.Product, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	products, err := s.menu.ListProducts(ctx, actor.EstablishmentID)
	return products, infra("list products", err)
}

func (s *MenuService) CreateProduct(ctx context.Context, actor Actor, input ProductInput) (*models.Product, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if err := validateProduct(input); err != nil {
		return nil, err
	}
	if _, err := s.category(ctx, actor.EstablishmentID, input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{EstablishmentID: actor.EstablishmentID, IsKosher: true, IsActive: true}
	applyProductInput(product, input)
	if err := s.menu.CreateProduct(ctx, product); err != nil {
		return nil, infra("create product", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return product, nil
}

func (s *MenuService) UpdateProduct(ctx context.Context, actor Actor, id uint, input ProductInput) (*models.Product, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if err := validateProduct(input); err != nil {
		return nil, err
	}
	product, err := s.menu.FindProduct(ctx, actor.EstablishmentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product")
		}
		return nil, infra("load product", err)
	}
	if _, err := s.category(ctx, actor.EstablishmentID, input.CategoryID); err != nil {
		return nil, err
	}

	applyProductInput(product, input)
	if err := s.menu.UpdateProduct(ctx, product); err != nil {
		return nil, infra("update product", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return product, nil
}

func (s *MenuService) DeleteProduct(ctx context.Context, actor Actor, id uint) error {
	if err := requireEstablishmentActor(actor); err != nil {
		return err
	}
	if _, err := s.menu.FindProduct(ctx, actor.EstablishmentID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("product")
		}
		return infra("load product", err)
	}
	if err := s.menu.DeleteProduct(ctx, actor.EstablishmentID, id); err != nil {
		return infra("delete product", err)
	}
	s.invalidate(ctx, actor.EstablishmentID)
	return nil
}

func (s *MenuService) category(ctx context.Context, establishmentID, id uint) (*models.Category, error) {
	category, err := s.menu.FindCategory(ctx, establishmentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("category")
		}
		return nil, infra("load category", err)
	}
	return category, nil
}

func (s *MenuService) invalidate(ctx context.Context, establishmentID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, establishmentID); err != nil {
		slog.Warn("menu cache invalidation failed", "establishment_id", establishmentID, "error", err)
	}
}

func validateProduct(input ProductInput) error {
	var fields []FieldError
	if input.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if input.Price == nil {
		fields = append(fields, FieldError{Field: "price", Message: "price is required"})
	} else if input.Price.IsNegative() {
		fields = append(fields, FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if input.CategoryID == 0 {
		fields = append(fields, FieldError{Field: "categoryId", Message: "category is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid product", Fields: fields}
	}
	return nil
}

func applyProductInput(product *models.Product, input ProductInput) {
	product.Name = input.Name
	product.Description = input.Description
	product.Price = *input.Price
	product.CategoryID = input.CategoryID
	product.ImageURL = input.Image
	product.SortOrder = input.Order
	if input.IsKosher != nil {
		product.IsKosher = *input.IsKosher
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
}
