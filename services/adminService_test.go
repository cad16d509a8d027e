package services_test

import (
	"context"
	"testing"

	"github.com/bekosher/bekosher-api/mocks"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var admin = services.Actor{UserID: 1, Role: models.RoleAdmin}

func TestAdminService_ListEstablishments(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewEstablishmentRepository(t)
	svc := services.NewAdminService(repository)
	pending := models.EstablishmentPending

	repository.On("List", ctx, services.EstablishmentFilter{Status: &pending, Page: services.Page{Page: 1, Limit: 10}}).
		Return([]models.Establishment{{Name: "Nova"}}, int64(1), nil).Once()

	establishments, pagination, err := svc.ListEstablishments(ctx, admin, &pending, services.Page{})
	require.NoError(t, err)
	assert.Len(t, establishments, 1)
	assert.Equal(t, 1, pagination.Pages)
}

func TestAdminService_ApproveAndReject(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		repository := mocks.NewEstablishmentRepository(t)
		repository.On("SetStatus", ctx, uint(4), models.EstablishmentApproved).Return(nil).Once()

		assert.NoError(t, services.NewAdminService(repository).Approve(ctx, admin, 4))
	})

	t.Run("reject_unknown", func(t *testing.T) {
		repository := mocks.NewEstablishmentRepository(t)
		repository.On("SetStatus", ctx, uint(4), models.EstablishmentRejected).Return(gorm.ErrRecordNotFound).Once()

		err := services.NewAdminService(repository).Reject(ctx, admin, 4)
		var notFoundErr *services.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("non_admin", func(t *testing.T) {
		err := services.NewAdminService(mocks.NewEstablishmentRepository(t)).Approve(ctx, restaurantUser, 4)
		var authErr *services.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})
}
