package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySignKey is returned when a token is generated or validated
	// without a signing secret.
	ErrEmptySignKey = errors.New("token sign key is empty")

	// ErrInvalidTokenParams is returned when the subject or role of a token
	// to be generated is missing or unknown.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrMalformedClaims is returned when a token verifies but its payload
	// lacks a subject or carries an unknown role.
	ErrMalformedClaims = errors.New("malformed token claims")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The payload always carries:
//   - Subject (sub): the user ID
//   - role:          the user role
//
// Optional claims:
//   - Issuer    (iss): only when issuer is non-empty
//   - IssuedAt  (iat) and ExpiresAt (exp): only when tokenDuration > 0
//
// With an empty issuer and zero duration the payload is exactly {sub, role}
// and the token never expires.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.ID.String(), user.Role, "", time.Hour, "secret")
func GenerateJWTToken(subject string, role models.Role, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}
	if subject == "" || !role.IsValid() || tokenDuration < 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: subject,
		},
	}
	if tokenDuration > 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Expiration (exp) claim check, when the claim is present
//   - Issuer (iss) claim check, when tokenIssuer is non-empty
//   - Subject (sub) presence and role validity
//
// Errors from the jwt library are wrapped, so callers can still match
// [jwt.ErrTokenExpired] with [errors.Is].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || !claims.Role.IsValid() {
		return models.Token{}, ErrMalformedClaims
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}
