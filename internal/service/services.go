package service

import (
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	authService, err := NewAuthService(storages.UserRepository, validator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, map[string]Pinger{"postgres": storages}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		CourseService:  NewCourseService(storages.CourseRepository, storages.EnrollmentRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
