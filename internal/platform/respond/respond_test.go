// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

/*
TestError_AppError writes the status and details of a typed error.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/users", nil)

	err := apperr.ValidationError("Validation failed", apperr.FieldError{Field: "Username", Message: "Minimum 5 characters"})
	respond.Error(recorder, request, fmt.Errorf("wrapped: %w", err))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, apperr.CodeValidation, body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Username", body.Errors[0].Field)
}

/*
TestError_UnknownError hides internal details behind a generic 500.
*/
func TestError_UnknownError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/movies", nil)

	respond.Error(recorder, request, errors.New("pgx: relation catalog.movie does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "catalog.movie")
	assert.Contains(t, recorder.Body.String(), "An unexpected error occurred")
}

/*
TestCreated writes the resource without an envelope.
*/
func TestCreated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, map[string]string{"Username": "alice"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"Username":"alice"}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}
