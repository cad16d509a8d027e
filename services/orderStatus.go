package services

import (
	"fmt"

	"github.com/bekosher/bekosher-api/models"
)

var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderDelivered},
	models.OrderDelivered: {},
	models.OrderCancelled: {},
}

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []models.OrderStatus{
	models.OrderPending,
	models.OrderConfirmed,
	models.OrderPreparing,
	models.OrderReady,
	models.OrderDelivered,
	models.OrderCancelled,
}

func ParseOrderStatus(value string) (models.OrderStatus, bool) {
	status := models.OrderStatus(value)
	_, ok := orderTransitions[status]
	return status, ok
}

// AllowedTransitions returns the statuses reachable from the given one. The
// result is never nil so it encodes as an empty JSON array.
func AllowedTransitions(from models.OrderStatus) []models.OrderStatus {
	allowed := make([]models.OrderStatus, 0, 2)
	return append(allowed, orderTransitions[from]...)
}

func IsTerminal(status models.OrderStatus) bool {
	return len(orderTransitions[status]) == 0
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, candidate := range orderTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an INVALID_TRANSITION business rule error that
// reports the current status and the allowed targets.
func ValidateTransition(from, to models.OrderStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return &BusinessRuleError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("cannot change order status from %s to %s", from, to),
		Details: map[string]any{
			"currentStatus":   from,
			"allowedStatuses": AllowedTransitions(from),
		},
	}
}
