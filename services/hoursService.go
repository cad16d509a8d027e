package services

import (
	"context"
	"regexp"

	"github.com/bekosher/bekosher-api/models"
)

var clockPattern = regexp.MustCompile(`^(([01][0-9]|2[0-3]):[0-5][0-9]|24:00)$`)

type WindowInput struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	OpenTime  string `json:"openTime" binding:"omitempty,hhmm"`
	CloseTime string `json:"closeTime" binding:"omitempty,hhmm"`
	IsOpen    bool   `json:"isOpen"`
}

type HoursInput struct {
	Hours []WindowInput `json:"hours" binding:"required,max=7,dive"`
}

// IsClock reports whether value is a zero padded "HH:mm" time of day or the
// end of day marker "24:00".
func IsClock(value string) bool {
	return clockPattern.MatchString(value)
}

type HoursService struct {
	hours HoursRepository
}

func NewHoursService(hours HoursRepository) *HoursService {
	return &HoursService{hours: hours}
}

func (s *HoursService) OperatingHours(ctx context.Context, actor Actor) ([]models.OperatingHours, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	hours, err := s.hours.ListOperatingHours(ctx, actor.EstablishmentID)
	return hours, infra("list operating hours", err)
}

func (s *HoursService) DeliveryHours(ctx context.Context, actor Actor) ([]models.DeliveryHours, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	hours, err := s.hours.ListDeliveryHours(ctx, actor.EstablishmentID)
	return hours, infra("list delivery hours", err)
}

// ReplaceOperatingHours swaps the whole weekly schedule in one write.
func (s *HoursService) ReplaceOperatingHours(ctx context.Context, actor Actor, input HoursInput) ([]models.OperatingHours, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	windows, err := normalizeWindows(input)
	if err != nil {
		return nil, err
	}
	hours := make([]models.OperatingHours, 0, len(windows))
	for _, w := range windows {
		hours = append(hours, models.OperatingHours{
			EstablishmentID: actor.EstablishmentID,
			DayOfWeek:       w.DayOfWeek,
			OpenTime:        w.OpenTime,
			CloseTime:       w.CloseTime,
			IsOpen:          w.IsOpen,
		})
	}
	if err := s.hours.ReplaceOperatingHours(ctx, actor.EstablishmentID, hours); err != nil {
		return nil, infra("replace operating hours", err)
	}
	return hours, nil
}

func (s *HoursService) ReplaceDeliveryHours(ctx context.Context, actor Actor, input HoursInput) ([]models.DeliveryHours, error) {
	if err := requireEstablishmentActor(actor); err != nil {
		return nil, err
	}
	windows, err := normalizeWindows(input)
	if err != nil {
		return nil, err
	}
	hours := make([]models.DeliveryHours, 0, len(windows))
	for _, w := range windows {
		hours = append(hours, models.DeliveryHours{
			EstablishmentID: actor.EstablishmentID,
			DayOfWeek:       w.DayOfWeek,
			OpenTime:        w.OpenTime,
			CloseTime:       w.CloseTime,
			IsOpen:          w.IsOpen,
		})
	}
	if err := s.hours.ReplaceDeliveryHours(ctx, actor.EstablishmentID, hours); err != nil {
		return nil, infra("replace delivery hours", err)
	}
	return hours, nil
}

// normalizeWindows checks one entry per day and same-day ranges. Closed
// days may omit their times and are never range checked.
func normalizeWindows(input HoursInput) ([]models.Window, error) {
	var fields []FieldError
	seen := make(map[int]bool, len(input.Hours))
	windows := make([]models.Window, 0, len(input.Hours))

	for i, in := range input.Hours {
		if in.DayOfWeek == nil || *in.DayOfWeek < 0 || *in.DayOfWeek > 6 {
			fields = append(fields, FieldError{Field: fieldIndex("hours", i, "dayOfWeek"), Message: "day of week must be between 0 and 6"})
			continue
		}
		day := *in.DayOfWeek
		if seen[day] {
			fields = append(fields, FieldError{Field: fieldIndex("hours", i, "dayOfWeek"), Message: "day of week appears more than once"})
			continue
		}
		seen[day] = true

		window := models.Window{DayOfWeek: day, OpenTime: in.OpenTime, CloseTime: in.CloseTime, IsOpen: in.IsOpen}
		if !in.IsOpen && window.OpenTime == "" && window.CloseTime == "" {
			window.OpenTime, window.CloseTime = "00:00", "00:00"
		}
		if !IsClock(window.OpenTime) || window.OpenTime == "24:00" {
			fields = append(fields, FieldError{Field: fieldIndex("hours", i, "openTime"), Message: "open time must use HH:mm"})
			continue
		}
		if !IsClock(window.CloseTime) {
			fields = append(fields, FieldError{Field: fieldIndex("hours", i, "closeTime"), Message: "close time must use HH:mm"})
			continue
		}
		if window.IsOpen && window.CloseTime < window.OpenTime {
			fields = append(fields, FieldError{
				Field:   fieldIndex("hours", i, "closeTime"),
				Message: "close time is before open time; windows cannot cross midnight, close at 24:00 instead",
			})
			continue
		}
		windows = append(windows, window)
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Message: "invalid hours", Fields: fields}
	}
	return windows, nil
}
