// Package errs provides standardized error types for the bitebox application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle engine:
//   - ObjectNotFoundError: an identifier is absent or excluded by a soft-delete filter
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - UnauthorizedError: a role or ownership guard failed
//   - InvalidTransitionError: an order status precondition is unmet
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Store failures carry no type here: they are propagated as-is from the
// persistence adapter and mapped to an internal error at the transport edge.
package errs
