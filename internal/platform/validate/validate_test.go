// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "Username", "alice", false},
		{"empty_string", "Username", "", true},
		{"whitespace_only", "Username", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Alphanumeric checks the letters-and-digits rule.
*/
func TestValidator_Alphanumeric(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"letters", "alice", true},
		{"letters_and_digits", "Alice2026", true},
		{"underscore", "alice_b", false},
		{"space", "alice b", false},
		{"dash", "al-ice", false},
		{"accented", "alicé", false},
		{"script_tag", "<script>", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Alphanumeric("Username", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"dotless_domain", "alice@localhost", false},
		{"trailing_dot_only", "alice@localhost.", false},
		{"subdomain", "alice@mail.example.co.uk", true},
		{"display_name", "Alice <alice@example.com>", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("Email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Date checks birthday parsing.
*/
func TestValidator_Date(t *testing.T) {
	v := &validate.Validator{}
	v.Date("Birthday", "1990-04-12")
	assert.False(t, v.HasErrors())

	v.Date("Birthday", "12/04/1990")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Custom records a failure only when the condition holds.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("Password", false, "This field is required")
	assert.False(t, v.HasErrors())

	v.Custom("Password", true, "This field is required")
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "This field is required", ae.Details[0].Message)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("Username", "alice").
		MinLen("Username", "alice", 5).
		Alphanumeric("Username", "alice").
		Email("Email", "alice@myflix.app").
		MaxBytes("Password", "secret123", 72).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("Username", "").       // Fails
		MinLen("Username", "a", 5).     // Fails
		Email("Email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
