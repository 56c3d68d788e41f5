package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
)

// messageInvalidCredentials is the only body a failed login ever gets.
const messageInvalidCredentials = "Invalid credentials"

// errorStatus pairs a sentinel with the status it maps to.
type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order; the first sentinel found in the error
// chain wins. Client-facing sentinels come before internal ones.
var errorStatuses = []errorStatus{
	{validators.ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrNoIdentity, http.StatusUnauthorized},
	{ErrInsufficientRole, http.StatusForbidden},

	{store.ErrCourseNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrCourseTitleAlreadyExists, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrAlreadyEnrolled, http.StatusConflict},
	{store.ErrReferenceNotFound, http.StatusUnprocessableEntity},

	{validators.ErrUnsupportedType, http.StatusInternalServerError},
	{service.ErrSignKeyIsNotSet, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// matchError returns the first entry of errorStatuses found in err's chain.
func matchError(err error) (errorStatus, bool) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es, true
		}
	}
	return errorStatus{}, false
}

func statusFromError(err error) int {
	if es, ok := matchError(err); ok {
		return es.status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-visible message for err. Validation
// errors list the offending fields; server errors never leak details.
func messageFromError(err error, status int) string {
	var validationErr *validators.ValidationError
	switch {
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return http.StatusText(status)
	case errors.Is(err, service.ErrInvalidCredentials):
		return messageInvalidCredentials
	case errors.As(err, &validationErr):
		return validationErr.Error()
	}

	if es, ok := matchError(err); ok {
		return es.target.Error()
	}
	return http.StatusText(status)
}

// writeError maps err to a status and writes {"message": ...}. A 404 is
// written with an empty body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusNotFound {
		w.WriteHeader(status)
		return
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}
