// Package errs provides standardized error types for the courier workflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its permitted bounds
//   - ObjectNotFoundError: a lookup had no backing record
//
// and for the workflow error taxonomy:
//   - InvalidStateError: an unrecognized order status value
//   - UnauthorizedError: a guarded action attempted by a non-assigned courier
//   - RequestFailedError: a network/backend error on fetch or mutation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// This standardized approach improves error reporting and enables consistent
// error classification at the HTTP boundary.
package errs
