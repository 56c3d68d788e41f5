package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/google/uuid"
)

type seedUser struct {
	user     models.User
	password string
}

var users = []seedUser{
	{user: models.User{Name: "Course Manager", Email: "manager@example.com", Role: models.RoleManager}, password: "manager-password"},
	{user: models.User{Name: "First Student", Email: "student@example.com", Role: models.RoleStudent}, password: "student-password"},
}

var courseTitles = []string{
	"Golang basics",
	"Concurrency in Go",
	"PostgreSQL for developers",
	"HTTP services 101",
	"Testing with testify",
}

func main() {
	log := logger.NewLogger("course-keeper-seed")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "seed"
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = seed(ctx, storages, services, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("seeding finished")
}

func seed(ctx context.Context, storages *store.Storages, services *service.Services, log *logger.Logger) error {
	var studentIDs []uuid.UUID
	for _, u := range users {
		user, err := ensureUser(ctx, storages, services, u)
		if err != nil {
			return err
		}
		log.Info().Str("email", user.Email).Str("role", user.Role.String()).Msg("user ready")
		if user.Role == models.RoleStudent {
			studentIDs = append(studentIDs, user.ID)
		}
	}

	for i, title := range courseTitles {
		courseID, err := ensureCourse(ctx, services.CourseService, title)
		if err != nil {
			return err
		}

		// every other course gets the students enrolled
		if i%2 != 0 {
			continue
		}
		for _, studentID := range studentIDs {
			_, err = services.CourseService.Enroll(ctx, studentID, courseID)
			if err != nil && !errors.Is(err, store.ErrAlreadyEnrolled) {
				return fmt.Errorf("enroll into %q: %w", title, err)
			}
		}
		log.Info().Str("title", title).Str("course_id", courseID.String()).Msg("course ready")
	}

	return nil
}

func ensureUser(ctx context.Context, storages *store.Storages, services *service.Services, u seedUser) (models.User, error) {
	user, err := services.AuthService.RegisterUser(ctx, u.user, u.password)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, fmt.Errorf("register %s: %w", u.user.Email, err)
	}

	return storages.UserRepository.FindUserByEmail(ctx, u.user.Email)
}

func ensureCourse(ctx context.Context, courses service.CourseService, title string) (uuid.UUID, error) {
	id, err := courses.CreateCourse(ctx, models.CreateCourseRequest{Title: title})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, store.ErrCourseTitleAlreadyExists) {
		return uuid.Nil, fmt.Errorf("create course %q: %w", title, err)
	}

	return findCourseByTitle(ctx, courses, title)
}

// findCourseByTitle walks every page of the title search until it meets an
// exact match.
func findCourseByTitle(ctx context.Context, courses service.CourseService, title string) (uuid.UUID, error) {
	for page := uint64(1); ; page++ {
		result, err := courses.ListCourses(ctx, models.ListCoursesRequest{Search: title, Page: page})
		if err != nil {
			return uuid.Nil, fmt.Errorf("look up course %q: %w", title, err)
		}

		for _, c := range result.Courses {
			if c.Title == title {
				return c.ID, nil
			}
		}

		if len(result.Courses) == 0 || page*store.CoursesPageSize >= uint64(result.Total) {
			break
		}
	}

	return uuid.Nil, fmt.Errorf("course %q exists but was not found", title)
}
