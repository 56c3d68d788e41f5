package adapter

import "errors"

// Errors mapped from API status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNotLoggedIn is returned by authenticated calls made before Login.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidBaseURL is returned by NewHTTPServerAdapter for an empty or
	// unparsable base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
)
