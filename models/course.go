// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Course is a single course entry. Description is nil when the column is NULL.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseSummary is a row of the course listing: a course together with the
// number of enrollments referencing it.
type CourseSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Enrollments int64     `json:"enrollments"`
}

// CourseOrder is the column a course listing is sorted by (always ascending).
type CourseOrder string

const (
	CourseOrderByID    CourseOrder = "id"
	CourseOrderByTitle CourseOrder = "title"
)

// CourseFilter holds the normalized listing parameters handed to the store.
type CourseFilter struct {
	// Search is a case-insensitive substring of the title. Empty means no filter.
	Search string

	// OrderBy is either CourseOrderByID or CourseOrderByTitle.
	OrderBy CourseOrder

	// Page is 1-based.
	Page uint64
}

// CoursePage is a single page of a course listing. Total reflects the filter
// but not the pagination.
type CoursePage struct {
	Courses []CourseSummary `json:"courses"`
	Total   int64           `json:"total"`
}
