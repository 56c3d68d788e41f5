package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-keeper/models"
)

// CoursesPageSize is the fixed number of courses returned per listing page.
const CoursesPageSize uint64 = 10

const (
	findUserByEmail = `SELECT id, name, email, password, role
    FROM users
    WHERE email = $1;`

	getCourseByID = `SELECT id, title, description
    FROM courses
    WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so s is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// courseOrderColumn maps an order option to a column; unknown values fall back to id.
func courseOrderColumn(order models.CourseOrder) string {
	if order == models.CourseOrderByTitle {
		return "c.title"
	}
	return "c.id"
}

// courseOffset returns the row offset of a 1-based page.
func courseOffset(page uint64) uint64 {
	if page <= 1 {
		return 0
	}
	return (page - 1) * CoursesPageSize
}

func searchPredicate(search string) sq.Sqlizer {
	if search == "" {
		return nil
	}
	return sq.ILike{"c.title": "%" + escapeLike(search) + "%"}
}

func buildCreateUserQuery(_ context.Context, user models.User) (string, []any, error) {
	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}

	query, args, err := psql.
		Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.PasswordHash, string(role)).
		Suffix("RETURNING id, role").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateCourseQuery(_ context.Context, course models.Course) (string, []any, error) {
	query, args, err := psql.
		Insert("courses").
		Columns("title", "description").
		Values(course.Title, course.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateEnrollmentQuery(_ context.Context, enrollment models.Enrollment) (string, []any, error) {
	query, args, err := psql.
		Insert("enrollments").
		Columns("user_id", "course_id").
		Values(enrollment.UserID, enrollment.CourseID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListCoursesQuery selects one page of courses with their enrollment
// counts, ordered ascending by the requested column.
func buildListCoursesQuery(_ context.Context, filter models.CourseFilter) (string, []any, error) {
	builder := psql.
		Select("c.id", "c.title", "COUNT(e.id) AS enrollments").
		From("courses c").
		LeftJoin("enrollments e ON e.course_id = c.id").
		GroupBy("c.id").
		OrderBy(courseOrderColumn(filter.OrderBy) + " ASC").
		Limit(CoursesPageSize).
		Offset(courseOffset(filter.Page))

	if pred := searchPredicate(filter.Search); pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountCoursesQuery counts the courses matching the search filter.
func buildCountCoursesQuery(_ context.Context, filter models.CourseFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("courses c")

	if pred := searchPredicate(filter.Search); pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
