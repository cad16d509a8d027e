package models

import "gorm.io/gorm"

// Window is one day-of-week service window. Times are zero padded "HH:mm"
// strings and "24:00" is accepted as the end of the day.
type Window struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

type OperatingHours struct {
	gorm.Model
	EstablishmentID uint   `json:"establishmentId" gorm:"uniqueIndex:idx_operating_hours_day,priority:1"`
	DayOfWeek       int    `json:"dayOfWeek" gorm:"uniqueIndex:idx_operating_hours_day,priority:2"`
	OpenTime        string `json:"openTime" gorm:"size:5"`
	CloseTime       string `json:"closeTime" gorm:"size:5"`
	IsOpen          bool   `json:"isOpen"`
}

func (h OperatingHours) AsWindow() Window {
	return Window{DayOfWeek: h.DayOfWeek, OpenTime: h.OpenTime, CloseTime: h.CloseTime, IsOpen: h.IsOpen}
}

type DeliveryHours struct {
	gorm.Model
	EstablishmentID uint   `json:"establishmentId" gorm:"uniqueIndex:idx_delivery_hours_day,priority:1"`
	DayOfWeek       int    `json:"dayOfWeek" gorm:"uniqueIndex:idx_delivery_hours_day,priority:2"`
	OpenTime        string `json:"openTime" gorm:"size:5"`
	CloseTime       string `json:"closeTime" gorm:"size:5"`
	IsOpen          bool   `json:"isOpen"`
}

func (h DeliveryHours) AsWindow() Window {
	return Window{DayOfWeek: h.DayOfWeek, OpenTime: h.OpenTime, CloseTime: h.CloseTime, IsOpen: h.IsOpen}
}
