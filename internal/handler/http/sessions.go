package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/metrics"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
)

// login handles POST /sessions. An unknown email and a wrong password get
// the same 400 {"message":"Invalid credentials"}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		metrics.LoginsTotal.WithLabelValues(metrics.LoginFailed).Inc()
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues(metrics.LoginFailed).Inc()
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		metrics.LoginsTotal.WithLabelValues(metrics.LoginFailed).Inc()
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID.String()).Msg("user successfully logged in")
	metrics.LoginsTotal.WithLabelValues(metrics.LoginSucceeded).Inc()

	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
}
