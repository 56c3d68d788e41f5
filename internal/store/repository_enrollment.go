package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/jackc/pgerrcode"
)

type enrollmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewEnrollmentRepository constructs an [EnrollmentRepository].
func NewEnrollmentRepository(db *DB, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEnrollmentQuery(ctx, enrollment)
	if err != nil {
		log.Err(err).Str("func", "enrollmentRepository.CreateEnrollment").Msg("failed to build query")
		return models.Enrollment{}, err
	}

	if err := e.DB.QueryRowContext(ctx, query, args...).Scan(&enrollment.ID, &enrollment.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "enrollmentRepository.CreateEnrollment").
			Str("user_id", enrollment.UserID.String()).
			Str("course_id", enrollment.CourseID.String()).
			Msg("failed to insert enrollment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Enrollment{}, ErrAlreadyEnrolled
		case pgerrcode.ForeignKeyViolation:
			return models.Enrollment{}, ErrReferenceNotFound
		case "":
			return models.Enrollment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.Enrollment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return enrollment, nil
}
