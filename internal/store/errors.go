package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrCourseTitleAlreadyExists is returned when the courses.title unique
	// constraint rejects an insert.
	ErrCourseTitleAlreadyExists = errors.New("course title already exists")

	// ErrCourseNotFound is returned when no course matches the given ID.
	ErrCourseNotFound = errors.New("course not found")

	// ErrAlreadyEnrolled is returned when the (user_id, course_id) pair
	// already exists.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in course")

	// ErrReferenceNotFound is returned when an enrollment points to a
	// missing user or course.
	ErrReferenceNotFound = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails for a reason
	// not mapped to a domain error.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
