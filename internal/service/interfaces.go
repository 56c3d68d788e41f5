package service

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
)

type AuthService interface {
	// RegisterUser hashes password and stores the user.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	// Login checks the credentials and returns the matching user.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CourseService interface {
	CreateCourse(ctx context.Context, request models.CreateCourseRequest) (uuid.UUID, error)
	// GetCourse validates the raw identifier before looking it up.
	GetCourse(ctx context.Context, request models.GetCourseRequest) (models.Course, error)
	// ListCourses returns one page and the total number of matches.
	ListCourses(ctx context.Context, request models.ListCoursesRequest) (models.CoursePage, error)
	Enroll(ctx context.Context, userID, courseID uuid.UUID) (models.Enrollment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckReadiness pings every dependency and reports its state by name.
	CheckReadiness(ctx context.Context) (map[string]string, error)
}

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
