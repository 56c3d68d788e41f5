package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/sessions", h.login)

		r.Get("/health", h.health)
		r.Get("/health/ready", h.ready)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/courses/{id}", h.getCourse)

		// managers only
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleManager))
			r.Post("/courses", h.createCourse)
			r.Get("/courses", h.listCourses)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
