package repositories_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/repositories"
	"github.com/bekosher/bekosher-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder() *models.Order {
	return &models.Order{
		UserID:          7,
		EstablishmentID: 1,
		Total:           decimal.RequireFromString("54.80"),
		DeliveryAddress: "Rua Augusta, 100",
		Status:          models.OrderPending,
		OrderItems: []models.OrderItem{
			{ProductID: 10, ProductName: "Schnitzel", Price: decimal.RequireFromString("48.90"), Quantity: 1},
		},
	}
}

func TestOrderRepository_CreateWithItems_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `orders`")).WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order_items`")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	order := newOrder()
	require.NoError(t, repository.CreateWithItems(context.Background(), order))
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, uint(42), order.OrderItems[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateWithItems_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `orders`")).WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order_items`")).WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	err := repository.CreateWithItems(context.Background(), newOrder())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatusIfCurrent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "status_unchanged_since_read", affected: 1, expected: true},
		{name: "status_changed_concurrently", affected: 0, expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repository := repositories.NewOrderRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `orders` SET `status`=?,`updated_at`=? WHERE (id = ? AND status = ?)")).
				WithArgs("CONFIRMED", sqlmock.AnyArg(), 42, "PENDING").
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))
			mock.ExpectCommit()

			updated, err := repository.UpdateStatusIfCurrent(context.Background(), 42, models.OrderPending, models.OrderConfirmed)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_FindByID_Scoped(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE orders.establishment_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repository.FindByID(context.Background(), 42, services.OrderScope{EstablishmentID: 1})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
