package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
)

// requireRole lets a request through only when the identity attached by
// auth has the given role. It must be mounted after auth; without an
// identity it fails closed with 401. A role mismatch yields 403.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoIdentity)
				return
			}

			if identity.Role != role {
				logger.FromRequest(r).Info().
					Str("user_id", identity.UserID.String()).
					Str("role", identity.Role.String()).
					Str("required_role", role.String()).
					Msg("role mismatch")
				writeError(w, r, ErrInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
