// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header carries a
	// scheme other than "Bearer".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Bearer" prefix is followed by
	// nothing.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Errors produced while decoding requests.
var (
	// ErrInvalidJSON is returned when a request body is not a JSON object of
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is returned when a query parameter has the wrong type.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrNoIdentity is returned by the role hook when the auth hook did not
	// attach an identity to the request.
	ErrNoIdentity = errors.New("no identity attached to request")

	// ErrInsufficientRole is returned when the attached identity has another
	// role than the route requires.
	ErrInsufficientRole = errors.New("insufficient role")
)
