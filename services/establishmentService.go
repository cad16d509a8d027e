package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bekosher/bekosher-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var maxDeliveryRadius = decimal.NewFromInt(50)

type EstablishmentView struct {
	ID               uint                     `json:"id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Type             models.EstablishmentType `json:"type"`
	Address          string                   `json:"address"`
	City             string                   `json:"city"`
	State            string                   `json:"state"`
	Phone            string                   `json:"phone"`
	LogoURL          string                   `json:"logoUrl"`
	HasDelivery      bool                     `json:"hasDelivery"`
	DeliveryFee      decimal.Decimal          `json:"deliveryFee"`
	MinDeliveryOrder decimal.Decimal          `json:"minDeliveryOrder"`
	DeliveryRadius   decimal.Decimal          `json:"deliveryRadius"`
	CreatedAt        time.Time                `json:"createdAt"`
	Availability
}

type MenuProduct struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsKosher    bool            `json:"isKosher"`
}

type MenuCategory struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Products    []MenuProduct `json:"products"`
}

type MenuView struct {
	Establishment EstablishmentView `json:"establishment"`
	Categories    []MenuCategory    `json:"categories"`
	TotalProducts int               `json:"totalProducts"`
}

type UpdateProfileInput struct {
	Name             string                   `json:"name" binding:"required"`
	Description      string                   `json:"description"`
	Phone            string                   `json:"phone" binding:"required"`
	Street           string                   `json:"street" binding:"required"`
	Number           string                   `json:"number" binding:"required"`
	Neighborhood     string                   `json:"neighborhood"`
	City             string                   `json:"city" binding:"required"`
	State            string                   `json:"state" binding:"required"`
	Cep              string                   `json:"cep" binding:"required"`
	Email            string                   `json:"email" binding:"required,email"`
	Image            string                   `json:"image"`
	Type             models.EstablishmentType `json:"type" binding:"omitempty,oneof=RESTAURANT BUFFET SWEET_SHOP OTHER"`
	HasDelivery      *bool                    `json:"hasDelivery"`
	DeliveryFee      *decimal.Decimal         `json:"deliveryFee"`
	MinDeliveryOrder *decimal.Decimal         `json:"minDeliveryOrder"`
	DeliveryRadius   *decimal.Decimal         `json:"deliveryRadius"`
	Certification    json.RawMessage          `json:"certification"`
}

type DeliverySettingsInput struct {
	HasDelivery      *bool            `json:"hasDelivery" binding:"required"`
	DeliveryFee      *decimal.Decimal `json:"deliveryFee"`
	MinDeliveryOrder *decimal.Decimal `json:"minDeliveryOrder"`
	DeliveryRadius   *decimal.Decimal `json:"deliveryRadius"`
}

type EstablishmentService struct {
	establishments EstablishmentRepository
	menu           MenuRepository
	cache          MenuCache
	availability   *AvailabilityEvaluator
	qr             QRGenerator
	publicBaseURL  string
}

// NewEstablishmentService wires the public and establishment-facing
// establishment use cases. cache may be nil.
func NewEstablishmentService(establishments EstablishmentRepository, menu MenuRepository, cache MenuCache, availability *AvailabilityEvaluator, qr QRGenerator, publicBaseURL string) *EstablishmentService {
	return &EstablishmentService{
		establishments: establishments,
		menu:           menu,
		cache:          cache,
		availability:   availability,
		qr:             qr,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *EstablishmentService) ListEstablishments(ctx context.Context, search string, hasDelivery bool, page Page) ([]EstablishmentView, Pagination, error) {
	approved := models.EstablishmentApproved
	filter := EstablishmentFilter{
		Search:      strings.TrimSpace(search),
		HasDelivery: hasDelivery,
		Status:      &approved,
		Page:        page.Normalize(),
	}
	establishments, total, err := s.establishments.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, infra("list establishments", err)
	}

	views := make([]EstablishmentView, 0, len(establishments))
	for i := range establishments {
		view, err := s.view(ctx, &establishments[i])
		if err != nil {
			return nil, Pagination{}, err
		}
		views = append(views, view)
	}
	return views, NewPagination(filter.Page, total), nil
}

func (s *EstablishmentService) Menu(ctx context.Context, id uint) (*MenuView, error) {
	establishment, err := s.approved(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, establishment)
	if err != nil {
		return nil, err
	}

	categories, err := s.activeCategories(ctx, establishment.ID)
	if err != nil {
		return nil, err
	}

	menu := &MenuView{Establishment: view, Categories: make([]MenuCategory, 0, len(categories))}
	for _, category := range categories {
		item := MenuCategory{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Products:    make([]MenuProduct, 0, len(category.Products)),
		}
		for _, product := range category.Products {
			item.Products = append(item.Products, MenuProduct{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Price:       product.Price,
				ImageURL:    product.ImageURL,
				IsKosher:    product.IsKosher,
			})
		}
		menu.TotalProducts += len(item.Products)
		menu.Categories = append(menu.Categories, item)
	}
	return menu, nil
}

// Availability evaluates the establishment at the given instant, or now
// when at is nil.
func (s *EstablishmentService) Availability(ctx context.Context, id uint, at *time.Time) (Availability, error) {
	establishment, err := s.approved(ctx, id)
	if err != nil {
		return Availability{}, err
	}
	if at != nil {
		return s.availability.EvaluateAt(ctx, establishment, *at)
	}
	return s.availability.Evaluate(ctx, establishment)
}

// MenuQRCode renders a PNG QR code that points at the public menu page.
func (s *EstablishmentService) MenuQRCode(ctx context.Context, id uint) ([]byte, error) {
	establishment, err := s.approved(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(fmt.Sprintf("%s/establishments/%d/menu", s.publicBaseURL, establishment.ID))
	if err != nil {
		return nil, infra("generate qr code", err)
	}
	return png, nil
}

func (s *EstablishmentService) Profile(ctx context.Context, actor Actor) (*models.Establishment, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	return s.own(ctx, actor)
}

func (s *EstablishmentService) UpdateProfile(ctx context.Context, actor Actor, input UpdateProfileInput) (*models.Establishment, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if err := validateDeliveryAmounts(input.DeliveryFee, input.MinDeliveryOrder, input.DeliveryRadius); err != nil {
		return nil, err
	}
	if len(input.Certification) > 0 && !json.Valid(input.Certification) {
		return nil, validationError("certification must be valid JSON")
	}

	establishment, err := s.own(ctx, actor)
	if err != nil {
		return nil, err
	}

	address := input.Street + ", " + input.Number
	if input.Neighborhood != "" {
		address += ", " + input.Neighborhood
	}

	establishment.Name = input.Name
	establishment.Description = input.Description
	establishment.Phone = input.Phone
	establishment.Address = address
	establishment.City = input.City
	establishment.State = input.State
	establishment.ZipCode = input.Cep
	establishment.Email = input.Email
	establishment.LogoURL = input.Image
	if input.Type != "" {
		establishment.Type = input.Type
	}
	if len(input.Certification) > 0 {
		establishment.Certification = datatypes.JSON(input.Certification)
	}
	if input.HasDelivery != nil {
		establishment.HasDelivery = *input.HasDelivery
	}
	applyDeliveryAmounts(establishment, input.DeliveryFee, input.MinDeliveryOrder, input.DeliveryRadius)

	if err := s.establishments.SaveProfile(ctx, establishment, input.Email); err != nil {
		return nil, infra("update profile", err)
	}
	return establishment, nil
}

func (s *EstablishmentService) UpdateDeliverySettings(ctx context.Context, actor Actor, input DeliverySettingsInput) (*models.Establishment, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	if input.HasDelivery == nil {
		return nil, validationError("hasDelivery is required")
	}
	if err := validateDeliveryAmounts(input.DeliveryFee, input.MinDeliveryOrder, input.DeliveryRadius); err != nil {
		return nil, err
	}

	establishment, err := s.own(ctx, actor)
	if err != nil {
		return nil, err
	}
	establishment.HasDelivery = *input.HasDelivery
	applyDeliveryAmounts(establishment, input.DeliveryFee, input.MinDeliveryOrder, input.DeliveryRadius)

	if err := s.establishments.Save(ctx, establishment); err != nil {
		return nil, infra("update delivery settings", err)
	}
	return establishment, nil
}

func (s *EstablishmentService) view(ctx context.Context, establishment *models.Establishment) (EstablishmentView, error) {
	availability, err := s.availability.Evaluate(ctx, establishment)
	if err != nil {
		return EstablishmentView{}, err
	}
	return EstablishmentView{
		ID:               establishment.ID,
		Name:             establishment.Name,
		Description:      establishment.Description,
		Type:             establishment.Type,
		Address:          establishment.Address,
		City:             establishment.City,
		State:            establishment.State,
		Phone:            establishment.Phone,
		LogoURL:          establishment.LogoURL,
		HasDelivery:      establishment.HasDelivery,
		DeliveryFee:      establishment.DeliveryFee,
		MinDeliveryOrder: establishment.MinDeliveryOrder,
		DeliveryRadius:   establishment.DeliveryRadius,
		CreatedAt:        establishment.CreatedAt,
		Availability:     availability,
	}, nil
}

// activeCategories serves the category tree from the cache when possible.
// Cache failures are logged and fall through to the database.
func (s *EstablishmentService) activeCategories(ctx context.Context, establishmentID uint) ([]models.Category, error) {
	if s.cache != nil {
		categories, ok, err := s.cache.Get(ctx, establishmentID)
		if err != nil {
			slog.Warn("menu cache read failed", "establishment_id", establishmentID, "error", err)
		} else if ok {
			return categories, nil
		}
	}

	categories, err := s.menu.ListCategories(ctx, establishmentID, true)
	if err != nil {
		return nil, infra("load menu", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, establishmentID, categories); err != nil {
			slog.Warn("menu cache write failed", "establishment_id", establishmentID, "error", err)
		}
	}
	return categories, nil
}

func (s *EstablishmentService) approved(ctx context.Context, id uint) (*models.Establishment, error) {
	establishment, err := s.establishments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("establishment")
		}
		return nil, infra("load establishment", err)
	}
	if establishment.Status != models.EstablishmentApproved {
		return nil, notFound("establishment")
	}
	return establishment, nil
}

func (s *EstablishmentService) own(ctx context.Context, actor Actor) (*models.Establishment, error) {
	establishment, err := s.establishments.FindByID(ctx, actor.EstablishmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("establishment")
		}
		return nil, infra("load establishment", err)
	}
	return establishment, nil
}

func validateDeliveryAmounts(fee, minOrder, radius *decimal.Decimal) error {
	var fields []FieldError
	if fee != nil && fee.IsNegative() {
		fields = append(fields, FieldError{Field: "deliveryFee", Message: "delivery fee cannot be negative"})
	}
	if minOrder != nil && minOrder.IsNegative() {
		fields = append(fields, FieldError{Field: "minDeliveryOrder", Message: "minimum order cannot be negative"})
	}
	if radius != nil && (radius.IsNegative() || radius.GreaterThan(maxDeliveryRadius)) {
		fields = append(fields, FieldError{Field: "deliveryRadius", Message: "delivery radius must be between 0 and 50 km"})
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid delivery settings", Fields: fields}
	}
	return nil
}

// applyDeliveryAmounts overwrites only the amounts present in the request.
// Omitted amounts keep their stored value unless delivery is off.
func applyDeliveryAmounts(establishment *models.Establishment, fee, minOrder, radius *decimal.Decimal) {
	if fee != nil {
		establishment.DeliveryFee = *fee
	}
	if minOrder != nil {
		establishment.MinDeliveryOrder = *minOrder
	}
	if radius != nil {
		establishment.DeliveryRadius = *radius
	}
	establishment.NormalizeDelivery()
}
