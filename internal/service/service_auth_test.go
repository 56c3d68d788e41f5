package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/mock"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSignKey = "test-sign-key"

// newTestAuthSvc builds an authService backed by a mocked UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc, err := NewAuthService(repo, validators.NewRequestValidator(), cfg, logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), repo
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return models.User{
		ID:           uuid.New(),
		Name:         "John Doe",
		Email:        "john@acme.com",
		PasswordHash: hash,
		Role:         models.RoleManager,
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	user := storedUser(t, "123456")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@acme.com").Return(user, nil)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: "john@acme.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleManager, got.Role)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	user := storedUser(t, "123456")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@acme.com").Return(user, nil)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@acme.com").Return(models.User{}, store.ErrUserNotFound)

	_, wrongPasswordErr := svc.Login(context.Background(), models.LoginRequest{Email: "john@acme.com", Password: "654321"})
	_, unknownEmailErr := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@acme.com", Password: "123456"})

	require.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func TestAuthService_Login_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	// repository must not be reached
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "john@acme.com"})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	dbErr := errors.New("connection refused")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "john@acme.com", Password: "123456"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, utils.VerifyPassword(u.PasswordHash, "123456"))
			assert.NotEqual(t, "123456", u.PasswordHash)
			u.ID = uuid.New()
			return u, nil
		},
	)

	got, err := svc.RegisterUser(context.Background(), models.User{Name: "John", Email: "john@acme.com"}, "123456")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "john@acme.com"}, "")
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	_, err = svc.RegisterUser(context.Background(), models.User{Email: "john@acme.com", Role: "admin"}, "123456")
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "john@acme.com"}, "123456")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Role: models.RoleStudent}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)

	identity, err := parsed.Identity()
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: user.ID, Role: models.RoleStudent}, identity)
	assert.Nil(t, parsed.Claims.ExpiresAt, "zero duration issues a non-expiring token")
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	claims := models.Claims{
		Role: models.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), raw)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey, TokenIssuer: "course-keeper"})

	other, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: "another-key", TokenIssuer: "course-keeper"})
	foreign, err := other.CreateToken(context.Background(), models.User{ID: uuid.New(), Role: models.RoleManager})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "foreign signature", token: foreign.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{})

	_, err := svc.CreateToken(context.Background(), models.User{ID: uuid.New(), Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrSignKeyIsNotSet)

	_, err = svc.ParseToken(context.Background(), "whatever")
	assert.ErrorIs(t, err, ErrSignKeyIsNotSet)
}

func TestAuthService_CreateToken_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{TokenSignKey: testSignKey})

	_, err := svc.CreateToken(context.Background(), models.User{ID: uuid.New(), Role: "admin"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
