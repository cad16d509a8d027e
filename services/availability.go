package services

import (
	"context"
	"time"

	"github.com/bekosher/bekosher-api/models"
)

type TimeRange struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Availability is the open/closed state of an establishment at one instant.
// IsDeliveryOpen is nil when the establishment does not deliver, which is
// different from a closed delivery window.
type Availability struct {
	DayOfWeek      int        `json:"dayOfWeek"`
	CurrentTime    string     `json:"currentTime"`
	IsOpen         bool       `json:"isOpen"`
	IsDeliveryOpen *bool      `json:"isDeliveryOpen"`
	OperatingHours *TimeRange `json:"operatingHours"`
	DeliveryHours  *TimeRange `json:"deliveryHours"`
}

func (a Availability) DeliveryApplicable() bool {
	return a.IsDeliveryOpen != nil
}

// AvailabilityEvaluator derives availability from the hours tables and the
// wall clock on every call. Results must not be cached.
type AvailabilityEvaluator struct {
	hours    HoursRepository
	location *time.Location
	now      func() time.Time
}

func NewAvailabilityEvaluator(hours HoursRepository, location *time.Location) *AvailabilityEvaluator {
	if location == nil {
		location = time.Local
	}
	return &AvailabilityEvaluator{hours: hours, location: location, now: time.Now}
}

// WithClock returns a copy of the evaluator reading time from now.
func (e *AvailabilityEvaluator) WithClock(now func() time.Time) *AvailabilityEvaluator {
	clone := *e
	clone.now = now
	return &clone
}

func (e *AvailabilityEvaluator) Evaluate(ctx context.Context, establishment *models.Establishment) (Availability, error) {
	return e.EvaluateAt(ctx, establishment, e.now())
}

func (e *AvailabilityEvaluator) EvaluateAt(ctx context.Context, establishment *models.Establishment, at time.Time) (Availability, error) {
	day, current := ClockReading(at.In(e.location))
	result := Availability{DayOfWeek: day, CurrentTime: current}

	operating, err := e.hours.FindOperatingHours(ctx, establishment.ID, day)
	if err != nil {
		return Availability{}, infra("load operating hours", err)
	}
	if operating != nil && operating.IsOpen {
		window := operating.AsWindow()
		result.IsOpen = WithinWindow(current, window)
		result.OperatingHours = &TimeRange{OpenTime: window.OpenTime, CloseTime: window.CloseTime}
	}

	if !establishment.HasDelivery {
		return result, nil
	}

	deliveryOpen := false
	delivery, err := e.hours.FindDeliveryHours(ctx, establishment.ID, day)
	if err != nil {
		return Availability{}, infra("load delivery hours", err)
	}
	if delivery != nil && delivery.IsOpen {
		window := delivery.AsWindow()
		deliveryOpen = WithinWindow(current, window)
		result.DeliveryHours = &TimeRange{OpenTime: window.OpenTime, CloseTime: window.CloseTime}
	}
	result.IsDeliveryOpen = &deliveryOpen

	return result, nil
}

// ClockReading returns the day of week (0 = Sunday) and the "HH:mm" time of
// day of t, truncated to the minute.
func ClockReading(t time.Time) (int, string) {
	return int(t.Weekday()), t.Format("15:04")
}

// WithinWindow compares zero padded "HH:mm" strings lexically, inclusive on
// both ends. Windows that cross midnight never match; they have to end at
// "24:00" instead.
func WithinWindow(current string, window models.Window) bool {
	if !window.IsOpen {
		return false
	}
	return current >= window.OpenTime && current <= window.CloseTime
}
