package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrSignKeyIsNotSet         = errors.New("token sign key is not set")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDependencyIsNotReady  = errors.New("dependency is not ready")
)
