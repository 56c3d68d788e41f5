// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload issued on login. Only "sub" and "role" are always
// present; "exp", "iat" and "iss" appear when the issuer is configured to
// emit them.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Claims holds the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Identity converts the token subject and role into an [Identity].
//
// Returns an error if the subject is not a valid uuid.
func (t *Token) Identity() (Identity, error) {
	userID, err := uuid.Parse(t.Claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("error converting token subject to user id: %w", err)
	}

	return Identity{UserID: userID, Role: t.Claims.Role}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
