package services

import (
	"errors"
	"fmt"
)

const (
	CodeMinOrderNotMet         = "MIN_ORDER_NOT_MET"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or unresolvable input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string { return e.Message }

// AuthorizationError reports an actor whose role or scope does not allow
// the operation.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// BusinessRuleError carries the data that caused the rule to fail so that
// callers can surface it unchanged.
type BusinessRuleError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *BusinessRuleError) Error() string { return e.Message }

type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

func validationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func forbidden(message string) error {
	return &AuthorizationError{Message: message}
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// infra wraps storage failures. Typed service errors pass through so that
// repositories may return them directly.
func infra(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		v *ValidationError
		a *AuthorizationError
		n *NotFoundError
		b *BusinessRuleError
		i *InfrastructureError
	)
	if errors.As(err, &v) || errors.As(err, &a) || errors.As(err, &n) || errors.As(err, &b) || errors.As(err, &i) {
		return err
	}
	return &InfrastructureError{Op: op, Err: err}
}

func fieldIndex(field string, index int, sub string) string {
	return fmt.Sprintf("%s.%d.%s", field, index, sub)
}
