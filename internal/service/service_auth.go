package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies argon2id credentials against a UserRepository and issues
// HS256 tokens carrying the user id and role.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim. When set, tokens with another
	// issuer are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	// dummyHash is verified against when the email is unknown so both
	// login failure branches do the same amount of work.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword("course-keeper-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// RegisterUser hashes password with argon2id and persists the user.
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, validators.ErrInvalidInput
	}
	if user.Role != "" && !user.Role.IsValid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", validators.ErrInvalidInput, user.Role)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a user by email and password.
//
// Returns the user on success. An unknown email and a wrong password both
// yield ErrInvalidCredentials; a malformed request yields a validation error.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.VerifyPassword(a.dummyHash, request.Password)
			log.Info().Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, request.Password) {
		log.Info().Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The subject is the user id and the "role" claim carries the user's role.
// Expiry and issuer are added only when configured.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrSignKeyIsNotSet
	}

	token, err := utils.GenerateJWTToken(user.ID.String(), user.Role, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; any other validation failure
// (bad signature, wrong issuer, malformed claims) yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrSignKeyIsNotSet
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
