package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
)

const (
	statusOK       = "ok"
	statusNotReady = "not ready"
)

// health reports liveness. It never touches dependencies.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: statusOK}, http.StatusOK)
}

// ready reports whether every dependency answers. Any failing dependency
// turns the response into 503.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	dependencies, err := h.services.AppInfoService.CheckReadiness(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("service is not ready")
		utils.WriteJSON(w, models.HealthResponse{Status: statusNotReady, Dependencies: dependencies}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: statusOK, Dependencies: dependencies}, http.StatusOK)
}
