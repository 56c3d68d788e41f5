// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), struct{ Name string }{"x"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_CreateCourseRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     any
		wantErr bool
		wantMsg string
	}{
		{name: "valid", req: models.CreateCourseRequest{Title: "Go basics"}},
		{name: "pointer valid", req: &models.CreateCourseRequest{Title: "Go basics"}},
		{name: "exactly five chars", req: models.CreateCourseRequest{Title: "abcde"}},
		{name: "empty", req: models.CreateCourseRequest{}, wantErr: true, wantMsg: "title is required"},
		{name: "too short", req: models.CreateCourseRequest{Title: "Go"}, wantErr: true, wantMsg: "title must be at least 5 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "john@acme.com", Password: "123456"}))

	err := v.Validate(ctx, models.LoginRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, FieldError{Field: "email", Message: "must be a valid email"}, verr.Fields[0])
	assert.Equal(t, FieldError{Field: "password", Message: "is required"}, verr.Fields[1])
}

func TestValidate_ListCoursesRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.ListCoursesRequest{OrderBy: models.CourseOrderByTitle, Page: 1}
	assert.NoError(t, v.Validate(ctx, valid))

	badOrder := valid
	badOrder.OrderBy = "enrollments"
	err := v.Validate(ctx, badOrder)
	require.Error(t, err)
	assert.Equal(t, "orderby must be one of: id, title", err.Error())

	longSearch := valid
	longSearch.Search = strings.Repeat("golang ", 200)
	assert.NoError(t, v.Validate(ctx, longSearch))

	badPage := valid
	badPage.Page = 0
	err = v.Validate(ctx, badPage)
	require.Error(t, err)
	assert.Equal(t, "page must be at least 1", err.Error())
}

func TestValidate_GetCourseRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	for _, id := range []string{
		"5f0c6f5e-9d3b-4f7a-8f3e-6b1b2d9a7c11",
		"3F2504E0-4F89-41D3-9A0C-0305E82C3301",
		"3f2504E0-4f89-41D3-9a0c-0305E82C3301",
	} {
		assert.NoError(t, v.Validate(ctx, models.GetCourseRequest{ID: id}), id)
	}

	for _, id := range []string{"", "42", "not-a-uuid", "5f0c6f5e-9d3b-4f7a-8f3e"} {
		t.Run(id, func(t *testing.T) {
			err := v.Validate(ctx, models.GetCourseRequest{ID: id})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	// Page is invalid but only OrderBy is checked.
	req := models.ListCoursesRequest{OrderBy: models.CourseOrderByID}
	assert.NoError(t, v.Validate(context.Background(), req, FieldOrderBy))
	assert.Error(t, v.Validate(context.Background(), req, FieldPage))
}
