// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/metrics"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-chi/chi/v5"
)

// createCourse handles POST /courses.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	courseID, err := h.services.CourseService.CreateCourse(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.CoursesCreatedTotal.Inc()
	utils.WriteJSON(w, models.CreateCourseResponse{CourseID: courseID}, http.StatusCreated)
}

// getCourse handles GET /courses/{id}.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	request := models.GetCourseRequest{ID: chi.URLParam(r, "id")}

	course, err := h.services.CourseService.GetCourse(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CourseResponse{Course: course}, http.StatusOK)
}

// listCourses handles GET /courses?search=&orderBy=&page=.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	request, err := parseListCoursesQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.CourseService.ListCourses(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// parseListCoursesQuery decodes the listing query. Absent parameters stay
// zero so the service applies its defaults; a present page must be a
// positive integer.
func parseListCoursesQuery(r *http.Request) (models.ListCoursesRequest, error) {
	query := r.URL.Query()

	request := models.ListCoursesRequest{
		Search:  query.Get("search"),
		OrderBy: models.CourseOrder(query.Get("orderBy")),
	}

	if rawPage := query.Get("page"); rawPage != "" {
		page, err := strconv.ParseUint(rawPage, 10, 64)
		if err != nil || page == 0 {
			return models.ListCoursesRequest{}, fmt.Errorf("%w: page must be a positive integer", ErrInvalidQuery)
		}
		request.Page = page
	}

	return request, nil
}
