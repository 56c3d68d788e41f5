// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.Adapter{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signedTestToken(t *testing.T, subject uuid.UUID, role models.Role) string {
	t.Helper()

	claims := models.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject.String()},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-key"))
	require.NoError(t, err)
	return signed
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3333", want: "http://localhost:3333"},
		{name: "trailing slash trimmed", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "scheme added", raw: "localhost:3333", want: "http://localhost:3333"},
		{name: "surrounding spaces", raw: "  localhost:3333 ", want: "http://localhost:3333"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	userID := uuid.New()
	signed := signedTestToken(t, userID, models.RoleManager)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sessions", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "manager@example.com", req.Email)
		assert.Equal(t, "secret", req.Password)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: signed})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "manager@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, signed, token.SignedString)
	assert.Equal(t, models.RoleManager, token.Claims.Role)
	assert.Equal(t, userID.String(), token.Claims.Subject)
	assert.Equal(t, signed, a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, a.Token())
}

func TestLogin_MalformedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "not-a-jwt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@example.com", Password: "p"})

	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestAuthenticatedCalls_RequireLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected before login")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.CreateCourse(ctx, "Golang basics")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = a.GetCourse(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = a.ListCourses(ctx, models.ListCoursesRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCreateCourse_Success(t *testing.T) {
	courseID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "raw-token", r.Header.Get("Authorization"))

		var req models.CreateCourseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Golang basics", req.Title)

		writeJSON(t, w, http.StatusCreated, models.CreateCourseResponse{CourseID: courseID})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("raw-token")

	got, err := a.CreateCourse(context.Background(), "Golang basics")
	require.NoError(t, err)
	assert.Equal(t, courseID, got)
}

func TestCreateCourse_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "validation", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "duplicate title", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.MessageResponse{Message: http.StatusText(tt.status)})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("raw-token")

			_, err := a.CreateCourse(context.Background(), "Golang basics")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetCourse(t *testing.T) {
	description := "intro"
	course := models.Course{ID: uuid.New(), Title: "Golang basics", Description: &description}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != "/courses/"+course.ID.String() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(t, w, http.StatusOK, models.CourseResponse{Course: course})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("raw-token")

	t.Run("found", func(t *testing.T) {
		got, err := a.GetCourse(context.Background(), course.ID.String())
		require.NoError(t, err)
		assert.Equal(t, course, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := a.GetCourse(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListCourses_QueryParameters(t *testing.T) {
	tests := []struct {
		name      string
		request   models.ListCoursesRequest
		wantQuery string
	}{
		{name: "defaults omitted", request: models.ListCoursesRequest{}, wantQuery: ""},
		{
			name:      "all set",
			request:   models.ListCoursesRequest{Search: "go", OrderBy: models.CourseOrderByTitle, Page: 2},
			wantQuery: "orderBy=title&page=2&search=go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := models.CoursePage{
				Courses: []models.CourseSummary{{ID: uuid.New(), Title: "Golang basics", Enrollments: 3}},
				Total:   11,
			}

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/courses", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.Query().Encode())
				writeJSON(t, w, http.StatusOK, page)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("raw-token")

			got, err := a.ListCourses(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, page, got)
		})
	}
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

// ── token storage ───────────────────────────────────────────────────────────

func TestSetToken_TrimsAndIsConcurrencySafe(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			a.SetToken("  tok  ")
			_ = a.Token()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, "tok", a.Token())
}
