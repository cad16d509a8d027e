package repositories_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursRepository_ReplaceOperatingHours(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewHoursRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `operating_hours` WHERE establishment_id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `operating_hours`")).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	err := repository.ReplaceOperatingHours(context.Background(), 1, []models.OperatingHours{
		{EstablishmentID: 1, DayOfWeek: 1, OpenTime: "11:00", CloseTime: "23:00", IsOpen: true},
		{EstablishmentID: 1, DayOfWeek: 2, OpenTime: "11:00", CloseTime: "23:00", IsOpen: true},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoursRepository_ReplaceDeliveryHours_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewHoursRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `delivery_hours` WHERE establishment_id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `delivery_hours`")).
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := repository.ReplaceDeliveryHours(context.Background(), 1, []models.DeliveryHours{
		{EstablishmentID: 1, DayOfWeek: 1, OpenTime: "18:00", CloseTime: "22:00", IsOpen: true},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoursRepository_FindOperatingHours_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repository := repositories.NewHoursRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `operating_hours` WHERE (establishment_id = ? AND day_of_week = ?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	hours, err := repository.FindOperatingHours(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Nil(t, hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}
