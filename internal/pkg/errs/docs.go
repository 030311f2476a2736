// Package errs provides standardized error types for the fulfillment
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsInvalid)
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels rather
// than matching on message text.
package errs
