package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for classification with errors.Is. Every structured error
// in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrOrderClosed        = errors.New("order is closed")
	ErrStoreMismatch      = errors.New("store mismatch")
	ErrBelowMinimumOrder  = errors.New("below minimum order")
	ErrRoutingUnavailable = errors.New("routing unavailable")
)

// sanitize keeps error messages single-line for log friendliness.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that a referenced object (menu item, order,
// store, cart line) does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that fails domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports an order lifecycle event that is not legal
// from the order's current status, including duplicate events.
type InvalidTransitionError struct {
	From  string
	Event string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current status and attempted event.
func NewInvalidTransitionError(from, event string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Event: event}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Event, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError reports an actor that lacks the role or relationship
// required for an action on an order.
type UnauthorizedError struct {
	ActorID string
	Action  string
}

// NewUnauthorizedError creates an UnauthorizedError for the given actor and action.
func NewUnauthorizedError(actorID, action string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Action: action}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: actor %s may not %s", ErrUnauthorized, e.ActorID, e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// OrderClosedError reports a mutation attempted on an order in a terminal status.
type OrderClosedError struct {
	OrderID string
	Status  string
}

// NewOrderClosedError creates an OrderClosedError for the given order and status.
func NewOrderClosedError(orderID, status string) *OrderClosedError {
	return &OrderClosedError{OrderID: orderID, Status: status}
}

func (e *OrderClosedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is %s", ErrOrderClosed, e.OrderID, e.Status))
}

func (e *OrderClosedError) Unwrap() error {
	return ErrOrderClosed
}

// StoreMismatchError reports an attempt to add an item from a second store to
// a cart already bound to another store.
type StoreMismatchError struct {
	CartStoreID string
	ItemStoreID string
}

// NewStoreMismatchError creates a StoreMismatchError for the two store identities.
func NewStoreMismatchError(cartStoreID, itemStoreID string) *StoreMismatchError {
	return &StoreMismatchError{CartStoreID: cartStoreID, ItemStoreID: itemStoreID}
}

func (e *StoreMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: cart belongs to store %s, item belongs to store %s",
		ErrStoreMismatch, e.CartStoreID, e.ItemStoreID))
}

func (e *StoreMismatchError) Unwrap() error {
	return ErrStoreMismatch
}

// BelowMinimumOrderError reports a subtotal below the store's configured
// minimum. Shortfall carries the amount the customer must add, so the caller
// can surface an actionable message.
type BelowMinimumOrderError struct {
	Minimum   decimal.Decimal
	Subtotal  decimal.Decimal
	Shortfall decimal.Decimal
}

// NewBelowMinimumOrderError creates a BelowMinimumOrderError; the shortfall is
// computed as minimum - subtotal.
func NewBelowMinimumOrderError(minimum, subtotal decimal.Decimal) *BelowMinimumOrderError {
	return &BelowMinimumOrderError{
		Minimum:   minimum,
		Subtotal:  subtotal,
		Shortfall: minimum.Sub(subtotal),
	}
}

func (e *BelowMinimumOrderError) Error() string {
	return sanitize(fmt.Sprintf("%s: subtotal %s is below minimum %s, shortfall %s",
		ErrBelowMinimumOrder, e.Subtotal, e.Minimum, e.Shortfall))
}

func (e *BelowMinimumOrderError) Unwrap() error {
	return ErrBelowMinimumOrder
}

// RoutingUnavailableError reports a failed or timed-out call to the routing
// capability. It is transient from the caller's point of view; the estimator
// never substitutes a default distance.
type RoutingUnavailableError struct {
	Cause error
}

// NewRoutingUnavailableError creates a RoutingUnavailableError wrapping cause.
func NewRoutingUnavailableError(cause error) *RoutingUnavailableError {
	return &RoutingUnavailableError{Cause: cause}
}

func (e *RoutingUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrRoutingUnavailable, e.Cause))
	}
	return ErrRoutingUnavailable.Error()
}

func (e *RoutingUnavailableError) Unwrap() error {
	return ErrRoutingUnavailable
}
