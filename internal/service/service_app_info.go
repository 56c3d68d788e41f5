package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
)

// Dependency states reported by CheckReadiness.
const (
	DependencyUp   = "up"
	DependencyDown = "down"
)

type appInfoService struct {
	appVersion string

	dependencies map[string]Pinger

	logger *logger.Logger
}

// NewAppInfoService builds an AppInfoService. dependencies are keyed by
// the name reported in readiness checks.
func NewAppInfoService(cfg config.App, dependencies map[string]Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:   cfg.Version,
		dependencies: dependencies,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckReadiness(ctx context.Context) (map[string]string, error) {
	states := make(map[string]string, len(s.dependencies))

	var errs []error
	for name, dep := range s.dependencies {
		if err := dep.Ping(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Str("dependency", name).Msg("dependency is not ready")
			states[name] = DependencyDown
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrDependencyIsNotReady, name, err))
			continue
		}
		states[name] = DependencyUp
	}

	return states, errors.Join(errs...)
}
