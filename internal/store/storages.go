package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
)

// Storages groups every repository together with the connection they share.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	CourseRepository     CourseRepository
	EnrollmentRepository EnrollmentRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires repositories on top of an already opened connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, logger),
		CourseRepository:     NewCourseRepository(db, logger),
		EnrollmentRepository: NewEnrollmentRepository(db, logger),
	}
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
