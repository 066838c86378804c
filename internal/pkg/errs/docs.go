// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Two groups of errors live here:
//   - Construction/validation errors raised by value objects and commands
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError)
//   - Business errors the caller is expected to handle and surface
//     (InvalidTransitionError, UnauthorizedError, OrderClosedError,
//     StoreMismatchError, BelowMinimumOrderError, RoutingUnavailableError)
//
// Each error type follows the same pattern: a sentinel variable for
// errors.Is classification, a struct with fields for the relevant
// identifiers, constructors with and without cause, an Error() method, and
// an Unwrap() method pointing at the sentinel. Business errors carry enough
// structured detail (order id, store ids, shortfall amount) for the caller
// to decide between retry and surface-to-user without parsing messages.
package errs
