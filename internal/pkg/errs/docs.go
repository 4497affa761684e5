// Package errs provides the standardized error types of the loan audit service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrInvalidTransition) usable with errors.Is
//   - a struct type carrying the details of one occurrence
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The workflow reports exactly two recoverable kinds to its callers:
//   - InvalidTransitionError: the action is not permitted from the current status
//     for the acting role
//   - ValidationError: the action is permitted but its payload failed a field rule
//
// VersionConflictError is raised by the order store when a write is based on a
// stale copy of an order. The remaining types cover constructor and lookup failures.
package errs
