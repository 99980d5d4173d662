// Package api defines the backend API surface used by the creditapp client
// and its HTTP implementation.
//
// The backend speaks plain HTTP with JSON bodies under the legacy /swift/
// path prefix. Failures are translated into a small set of sentinel errors
// (ErrUnavailable, ErrInvalidCredentials) that upper layers match with
// errors.Is; everything else is returned wrapped for logging.
//
// All calls are attempt-once: there is no retry or backoff anywhere in the
// client, and timeouts are whatever the underlying transport provides.
package api
