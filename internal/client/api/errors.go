package api

import "errors"

var (
	// ErrUnavailable covers every transport-level failure: unreachable host,
	// timeout, refused connection. Matched with errors.Is.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is returned when the login endpoint answers 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
