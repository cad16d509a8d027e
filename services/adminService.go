package services

import (
	"context"
	"errors"

	"github.com/bekosher/bekosher-api/models"
	"gorm.io/gorm"
)

type AdminService struct {
	establishments EstablishmentRepository
}

func NewAdminService(establishments EstablishmentRepository) *AdminService {
	return &AdminService{establishments: establishments}
}

func (s *AdminService) ListEstablishments(ctx context.Context, actor Actor, status *models.EstablishmentStatus, page Page) ([]models.Establishment, Pagination, error) {
	if !actor.Is(models.RoleAdmin) {
		return nil, Pagination{}, forbidden("admin access required")
	}
	filter := EstablishmentFilter{Status: status, Page: page.Normalize()}
	establishments, total, err := s.establishments.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, infra("list establishments", err)
	}
	return establishments, NewPagination(filter.Page, total), nil
}

func (s *AdminService) Approve(ctx context.Context, actor Actor, id uint) error {
	return s.setStatus(ctx, actor, id, models.EstablishmentApproved)
}

func (s *AdminService) Reject(ctx context.Context, actor Actor, id uint) error {
	return s.setStatus(ctx, actor, id, models.EstablishmentRejected)
}

func (s *AdminService) setStatus(ctx context.Context, actor Actor, id uint, status models.EstablishmentStatus) error {
	if !actor.Is(models.RoleAdmin) {
		return forbidden("admin access required")
	}
	if err := s.establishments.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("establishment")
		}
		return infra("update establishment status", err)
	}
	return nil
}
