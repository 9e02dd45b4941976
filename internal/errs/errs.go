// Package errs defines the error types returned to API clients.
//
// Every error response has the same JSON shape (HTTPError) so clients can
// rely on a stable contract: a machine-readable code, a human message, the
// HTTP status and, for validation failures, per-field errors.
package errs
