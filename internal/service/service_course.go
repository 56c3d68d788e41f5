package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Listing defaults applied to zero-valued request fields.
const (
	DefaultCourseOrder = models.CourseOrderByID
	DefaultCoursePage  = 1
)

type courseService struct {
	courseRepository     store.CourseRepository
	enrollmentRepository store.EnrollmentRepository
	validator            validators.Validator
	logger               *logger.Logger
}

func NewCourseService(courses store.CourseRepository, enrollments store.EnrollmentRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository:     courses,
		enrollmentRepository: enrollments,
		validator:            validator,
		logger:               logger,
	}
}

// CreateCourse validates the title and stores a course without description.
func (s *courseService) CreateCourse(ctx context.Context, request models.CreateCourseRequest) (uuid.UUID, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return uuid.Nil, err
	}

	id, err := s.courseRepository.CreateCourse(ctx, models.Course{Title: request.Title})
	if err != nil {
		return uuid.Nil, fmt.Errorf("error creating course: %w", err)
	}

	logger.FromContext(ctx).Info().Str("course_id", id.String()).Msg("course created")
	return id, nil
}

// GetCourse returns the course or store.ErrCourseNotFound. A malformed id
// is a validation error, never a not-found.
func (s *courseService) GetCourse(ctx context.Context, request models.GetCourseRequest) (models.Course, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Course{}, err
	}

	id, err := uuid.Parse(request.ID)
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", validators.ErrInvalidInput, err)
	}

	course, err := s.courseRepository.GetCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// ListCourses fetches the requested page and the total match count
// concurrently. If either query fails the whole call fails.
func (s *courseService) ListCourses(ctx context.Context, request models.ListCoursesRequest) (models.CoursePage, error) {
	if request.OrderBy == "" {
		request.OrderBy = DefaultCourseOrder
	}
	if request.Page == 0 {
		request.Page = DefaultCoursePage
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.CoursePage{}, err
	}

	filter := models.CourseFilter{
		Search:  request.Search,
		OrderBy: request.OrderBy,
		Page:    request.Page,
	}

	var (
		courses []models.CourseSummary
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.courseRepository.ListCourses(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.courseRepository.CountCourses(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Uint64("page", filter.Page).Msg("error listing courses")
		return models.CoursePage{}, fmt.Errorf("error listing courses: %w", err)
	}

	if courses == nil {
		courses = []models.CourseSummary{}
	}

	return models.CoursePage{Courses: courses, Total: total}, nil
}

// Enroll links a user to a course.
func (s *courseService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (models.Enrollment, error) {
	if userID == uuid.Nil || courseID == uuid.Nil {
		return models.Enrollment{}, validators.ErrInvalidInput
	}

	enrollment, err := s.enrollmentRepository.CreateEnrollment(ctx, models.Enrollment{UserID: userID, CourseID: courseID})
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("error enrolling user: %w", err)
	}

	return enrollment, nil
}
