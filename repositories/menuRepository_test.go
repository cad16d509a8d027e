package repositories_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bekosher/bekosher-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository_FindActiveProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewMenuRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE (id IN (?,?) AND establishment_id = ? AND is_active = ?)")).
		WithArgs(10, 11, 1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "establishment_id", "name", "price", "is_active"}).
			AddRow(10, 1, "Schnitzel", "48.90", true))

	products, err := repository.FindActiveProducts(context.Background(), 1, []uint{10, 11})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "48.9", products[0].Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_DeleteCategory_RemovesProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewMenuRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `deleted_at`=? WHERE (category_id = ? AND establishment_id = ?)")).
		WithArgs(sqlmock.AnyArg(), 5, 1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `categories` SET `deleted_at`=? WHERE (id = ? AND establishment_id = ?)")).
		WithArgs(sqlmock.AnyArg(), 5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repository.DeleteCategory(context.Background(), 1, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
