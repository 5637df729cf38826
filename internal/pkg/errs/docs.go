// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value leaves its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a unique constraint would be violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers match on the sentinels with errors.Is, which keeps transport-level
// error mapping independent of the message text.
package errs
