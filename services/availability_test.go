package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bekosher/bekosher-api/mocks"
	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 2024-06-03 is a Monday.
func monday(clock string) time.Time {
	at, err := time.ParseInLocation("2006-01-02 15:04", "2024-06-03 "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return at
}

func operating(openTime, closeTime string, isOpen bool) *models.OperatingHours {
	return &models.OperatingHours{EstablishmentID: 1, DayOfWeek: 1, OpenTime: openTime, CloseTime: closeTime, IsOpen: isOpen}
}

func TestAvailabilityEvaluator_EvaluateAt(t *testing.T) {
	ctx := context.Background()
	pickupOnly := &models.Establishment{Model: gorm.Model{ID: 1}}

	tests := []struct {
		name         string
		clock        string
		hours        *models.OperatingHours
		expectedOpen bool
	}{
		{name: "inside_window", clock: "15:00", hours: operating("11:00", "23:00", true), expectedOpen: true},
		{name: "before_open", clock: "10:59", hours: operating("11:00", "23:00", true), expectedOpen: false},
		{name: "opening_minute_inclusive", clock: "11:00", hours: operating("11:00", "23:00", true), expectedOpen: true},
		{name: "closing_minute_inclusive", clock: "23:00", hours: operating("11:00", "23:00", true), expectedOpen: true},
		{name: "after_close", clock: "23:30", hours: operating("11:00", "23:00", true), expectedOpen: false},
		{name: "end_of_day_marker", clock: "23:59", hours: operating("11:00", "24:00", true), expectedOpen: true},
		{name: "day_marked_closed", clock: "15:00", hours: operating("11:00", "23:00", false), expectedOpen: false},
		{name: "no_row_for_day", clock: "15:00", hours: nil, expectedOpen: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			hours := mocks.NewHoursRepository(t)
			hours.On("FindOperatingHours", ctx, uint(1), 1).Return(testCase.hours, nil).Once()

			evaluator := services.NewAvailabilityEvaluator(hours, time.UTC)
			result, err := evaluator.EvaluateAt(ctx, pickupOnly, monday(testCase.clock))
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedOpen, result.IsOpen)
			assert.Equal(t, 1, result.DayOfWeek)
			assert.Equal(t, testCase.clock, result.CurrentTime)
			assert.Nil(t, result.IsDeliveryOpen)
			assert.False(t, result.DeliveryApplicable())
		})
	}
}

func TestAvailabilityEvaluator_Delivery(t *testing.T) {
	ctx := context.Background()
	delivering := &models.Establishment{Model: gorm.Model{ID: 1}, HasDelivery: true}

	t.Run("open_for_delivery", func(t *testing.T) {
		hours := mocks.NewHoursRepository(t)
		hours.On("FindOperatingHours", ctx, uint(1), 1).Return(operating("11:00", "23:00", true), nil).Once()
		hours.On("FindDeliveryHours", ctx, uint(1), 1).
			Return(&models.DeliveryHours{EstablishmentID: 1, DayOfWeek: 1, OpenTime: "18:00", CloseTime: "22:30", IsOpen: true}, nil).Once()

		result, err := services.NewAvailabilityEvaluator(hours, time.UTC).EvaluateAt(ctx, delivering, monday("19:15"))
		require.NoError(t, err)
		require.NotNil(t, result.IsDeliveryOpen)
		assert.True(t, *result.IsDeliveryOpen)
		assert.Equal(t, &services.TimeRange{OpenTime: "18:00", CloseTime: "22:30"}, result.DeliveryHours)
	})

	t.Run("no_delivery_row_is_false_not_null", func(t *testing.T) {
		hours := mocks.NewHoursRepository(t)
		hours.On("FindOperatingHours", ctx, uint(1), 1).Return(operating("11:00", "23:00", true), nil).Once()
		hours.On("FindDeliveryHours", ctx, uint(1), 1).Return((*models.DeliveryHours)(nil), nil).Once()

		result, err := services.NewAvailabilityEvaluator(hours, time.UTC).EvaluateAt(ctx, delivering, monday("19:15"))
		require.NoError(t, err)
		require.NotNil(t, result.IsDeliveryOpen)
		assert.False(t, *result.IsDeliveryOpen)
		assert.True(t, result.IsOpen)
	})
}

func TestAvailabilityEvaluator_UsesConfiguredZone(t *testing.T) {
	ctx := context.Background()
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	hours := mocks.NewHoursRepository(t)
	// 02:00 UTC on Tuesday is 23:00 on Monday in BRT.
	hours.On("FindOperatingHours", ctx, uint(1), 1).Return(operating("11:00", "23:00", true), nil).Once()

	at := time.Date(2024, 6, 4, 2, 0, 0, 0, time.UTC)
	result, err := services.NewAvailabilityEvaluator(hours, saoPaulo).EvaluateAt(ctx, &models.Establishment{Model: gorm.Model{ID: 1}}, at)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DayOfWeek)
	assert.Equal(t, "23:00", result.CurrentTime)
	assert.True(t, result.IsOpen)
}

func TestAvailabilityEvaluator_Idempotent(t *testing.T) {
	ctx := context.Background()
	hours := mocks.NewHoursRepository(t)
	hours.On("FindOperatingHours", ctx, uint(1), 1).Return(operating("11:00", "23:00", true), nil).Twice()

	fixed := monday("12:30").Add(15 * time.Second)
	evaluator := services.NewAvailabilityEvaluator(hours, time.UTC).WithClock(func() time.Time { return fixed })
	establishment := &models.Establishment{Model: gorm.Model{ID: 1}}

	first, err := evaluator.Evaluate(ctx, establishment)
	require.NoError(t, err)
	second, err := evaluator.Evaluate(ctx, establishment)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvailabilityEvaluator_StorageError(t *testing.T) {
	ctx := context.Background()
	hours := mocks.NewHoursRepository(t)
	hours.On("FindOperatingHours", ctx, uint(1), mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := services.NewAvailabilityEvaluator(hours, time.UTC).EvaluateAt(ctx, &models.Establishment{Model: gorm.Model{ID: 1}}, monday("12:00"))
	var infraErr *services.InfrastructureError
	assert.ErrorAs(t, err, &infraErr)
}

func TestWithinWindow(t *testing.T) {
	window := models.Window{OpenTime: "09:00", CloseTime: "17:00", IsOpen: true}
	assert.True(t, services.WithinWindow("09:00", window))
	assert.True(t, services.WithinWindow("17:00", window))
	assert.False(t, services.WithinWindow("17:01", window))

	window.IsOpen = false
	assert.False(t, services.WithinWindow("12:00", window))

	crossing := models.Window{OpenTime: "22:00", CloseTime: "02:00", IsOpen: true}
	assert.False(t, services.WithinWindow("23:00", crossing))
	assert.False(t, services.WithinWindow("01:00", crossing))
}
