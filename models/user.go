// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Role determines which endpoints an authenticated user may reach.
type Role string

const (
	// RoleStudent is the default role assigned at registration.
	RoleStudent Role = "student"

	// RoleManager may create and list courses.
	RoleManager Role = "manager"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleManager:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// PasswordHash is an argon2id PHC string and must never leave the server.
type User struct {
	// ID is the server-generated unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is unique across all users and is used as the login.
	Email string `json:"email"`

	// PasswordHash is the encoded argon2id hash of the user's password.
	PasswordHash string `json:"-"`

	// Role is either "student" or "manager".
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated principal attached to a request context
// after the bearer of a valid token has been verified.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}
