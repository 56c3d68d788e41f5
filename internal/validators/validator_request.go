package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for partial validation.
const (
	FieldTitle    = "Title"
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldOrderBy  = "OrderBy"
	FieldPage     = "Page"
	FieldID       = "ID"
)

// RequestValidator validates inbound request models using the `validate`
// struct tags declared on them.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator constructs a RequestValidator. Error field names are
// taken from the json tag when present.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &RequestValidator{v: v}
}

// Validate checks obj. When fields are given only those struct fields
// (Go names, see the Field* constants) are checked.
func (rv *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateCourseRequest, *models.CreateCourseRequest,
		models.LoginRequest, *models.LoginRequest,
		models.ListCoursesRequest, *models.ListCoursesRequest,
		models.GetCourseRequest, *models.GetCourseRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = rv.v.StructCtx(ctx, obj)
	} else {
		err = rv.v.StructPartialCtx(ctx, obj, fields...)
	}

	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid", "uuid_rfc4122":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + param + " characters long"
		}
		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters long"
		}
		return "must be at most " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
