package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrUpstream     = errors.New("upstream error")

	ErrAlreadyAssigned = errors.New("delivery already assigned")

	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrDeliveryNotFound = fmt.Errorf("delivery %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrRiderNotFound    = fmt.Errorf("rider %w", ErrNotFound)

	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrValidation)
)

// StateError is returned when a requested transition is not allowed from the
// current status. It matches ErrInvalidState and, for lost claims, ErrAlreadyAssigned.
type StateError struct {
	Kind      error
	Entity    string
	Current   string
	Requested string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot transition %s from %q to %q", e.Entity, e.Current, e.Requested)
}

func (e *StateError) Unwrap() []error {
	if e.Kind == nil || e.Kind == ErrInvalidState {
		return []error{ErrInvalidState}
	}
	return []error{e.Kind, ErrInvalidState}
}

func NewOrderStateError(current, requested OrderStatus) *StateError {
	return &StateError{Kind: ErrInvalidState, Entity: "order", Current: string(current), Requested: string(requested)}
}

func NewDeliveryStateError(current, requested DeliveryStatus) *StateError {
	return &StateError{Kind: ErrInvalidState, Entity: "delivery", Current: string(current), Requested: string(requested)}
}

func NewAlreadyAssignedError(current DeliveryStatus) *StateError {
	return &StateError{Kind: ErrAlreadyAssigned, Entity: "delivery", Current: string(current), Requested: string(DeliveryAssigned)}
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
