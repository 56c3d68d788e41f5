// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the course-keeper HTTP API.
//
// [ServerAdapter] decouples callers such as cmd/client from the REST
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
)

// ServerAdapter defines communication with the course-keeper server.
// Implementations hold the session token and attach it to every
// authenticated request.
type ServerAdapter interface {
	// SetToken stores the token attached to subsequent authenticated requests.
	SetToken(token string)

	// Token returns the stored token, or an empty string before Login.
	Token() string

	// Login opens a session via POST /sessions and stores the issued token.
	// A rejected login yields [ErrInvalidCredentials].
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// CreateCourse creates a course and returns its id. Requires a manager
	// session.
	CreateCourse(ctx context.Context, title string) (uuid.UUID, error)

	// GetCourse fetches a single course. A missing course yields [ErrNotFound].
	GetCourse(ctx context.Context, id string) (models.Course, error)

	// ListCourses fetches one page of the course listing. Requires a manager
	// session.
	ListCourses(ctx context.Context, request models.ListCoursesRequest) (models.CoursePage, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
