// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// CreateCourseResponse is returned with 201 by POST /courses.
type CreateCourseResponse struct {
	CourseID uuid.UUID `json:"courseId"`
}

// CourseResponse is returned by GET /courses/{id}.
type CourseResponse struct {
	Course Course `json:"course"`
}

// TokenResponse is returned by a successful POST /sessions.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of every error reply that carries one.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
