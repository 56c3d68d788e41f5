package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated ID.
	// The role defaults to student when empty.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CourseRepository persists courses and answers listing queries.
type CourseRepository interface {
	// CreateCourse inserts a course and returns the generated ID.
	// A duplicate title yields [ErrCourseTitleAlreadyExists].
	CreateCourse(ctx context.Context, course models.Course) (uuid.UUID, error)

	// GetCourseByID returns the course or [ErrCourseNotFound].
	GetCourseByID(ctx context.Context, id uuid.UUID) (models.Course, error)

	// ListCourses returns one page of courses matching filter, each with its
	// enrollment count.
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseSummary, error)

	// CountCourses returns how many courses match filter.Search, ignoring
	// pagination.
	CountCourses(ctx context.Context, filter models.CourseFilter) (int64, error)
}

// EnrollmentRepository persists user-course enrollments.
type EnrollmentRepository interface {
	// CreateEnrollment links a user to a course. A repeated pair yields
	// [ErrAlreadyEnrolled].
	CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
}
