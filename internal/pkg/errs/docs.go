// Package errs provides standardized error types for the marketplace backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Expected domain outcomes (invalid transitions, lost claim races, gate
// failures) are NOT defined here; they live as sentinel errors in their
// domain packages so callers can branch on them with errors.Is. This package
// covers the generic validation and persistence error vocabulary.
package errs
