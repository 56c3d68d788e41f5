// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title string `json:"title" validate:"required,min=5"`
}

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ListCoursesRequest is the decoded query of GET /courses.
// Zero values are replaced with defaults before validation.
type ListCoursesRequest struct {
	Search  string
	OrderBy CourseOrder `validate:"oneof=id title"`
	Page    uint64      `validate:"min=1"`
}

// GetCourseRequest carries the raw path parameter of GET /courses/{id}.
type GetCourseRequest struct {
	ID string `validate:"required,uuid_rfc4122"`
}
