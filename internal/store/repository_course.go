package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository]. Listing queries join "enrollments" to report
// per-course enrollment counts.
type courseRepository struct {
	*DB
	logger *logger.Logger
}

// NewCourseRepository constructs a [CourseRepository] backed by the
// provided database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCourse inserts a course and returns its generated ID.
// A title collision maps to [ErrCourseTitleAlreadyExists].
func (c *courseRepository) CreateCourse(ctx context.Context, course models.Course) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCourseQuery(ctx, course)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.CreateCourse").Msg("failed to build query")
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := c.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "courseRepository.CreateCourse").
			Str("title", course.Title).
			Msg("failed to insert course")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return uuid.Nil, ErrCourseTitleAlreadyExists
		case "":
			return uuid.Nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return uuid.Nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return id, nil
}

// GetCourseByID returns the course with the given ID or [ErrCourseNotFound].
func (c *courseRepository) GetCourseByID(ctx context.Context, id uuid.UUID) (models.Course, error) {
	log := logger.FromContext(ctx)

	var course models.Course
	err := c.DB.withRetry(ctx, func() error {
		return c.DB.QueryRowContext(ctx, getCourseByID, id).
			Scan(&course.ID, &course.Title, &course.Description)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).
			Str("func", "courseRepository.GetCourseByID").
			Str("course_id", id.String()).
			Msg("failed to get course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

// ListCourses returns at most [CoursesPageSize] courses matching filter.
// Returns an empty slice when the page is past the end.
func (c *courseRepository) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("failed to build query")
		return nil, err
	}

	var rows *sql.Rows
	err = c.DB.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = c.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.ListCourses").
			Uint64("page", filter.Page).
			Msg("failed to execute query for listing courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.CourseSummary, 0, CoursesPageSize)

	for rows.Next() {
		var course models.CourseSummary

		if scanErr := rows.Scan(&course.ID, &course.Title, &course.Enrollments); scanErr != nil {
			log.Err(scanErr).
				Str("func", "courseRepository.ListCourses").
				Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		courses = append(courses, course)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "courseRepository.ListCourses").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return courses, nil
}

// CountCourses returns the number of courses matching filter.Search.
func (c *courseRepository) CountCourses(ctx context.Context, filter models.CourseFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCoursesQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.CountCourses").Msg("failed to build query")
		return 0, err
	}

	var total int64
	err = c.DB.withRetry(ctx, func() error {
		return c.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.CountCourses").
			Msg("failed to count courses")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
