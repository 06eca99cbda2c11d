// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user implements account registration, profile updates and the
per-user list of favorite movies.

# Architecture

  - Entity: [User] with a calendar [Date] birthday.
  - Repository: Postgres and MongoDB implementations of [Repository].
  - Service: validation, password hashing and the uniqueness check.
  - Handler: chi routes under /users.
*/
package user

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/taibuivan/myflix/internal/platform/validate"
)

// # Domain Entities

// User represents a registered member.
//
// The password hash never leaves the service: it is excluded from JSON.
type User struct {
	ID             string   `json:"_id"`
	Username       string   `json:"Username"`
	PasswordHash   string   `json:"-"`
	Email          string   `json:"Email"`
	Birthday       Date     `json:"Birthday"`
	FavoriteMovies []string `json:"FavoriteMovies"`
}

// UpdateFields is a partial update. A nil field is left unchanged.
type UpdateFields struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *Date
}

// IsEmpty reports whether no field is set.
func (fields UpdateFields) IsEmpty() bool {
	return fields.Username == nil && fields.PasswordHash == nil && fields.Email == nil && fields.Birthday == nil
}

// # Calendar Date

// Date is a day without time of day, encoded as YYYY-MM-DD. The zero value
// is an unknown date and encodes as null.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(validate.DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: parsed}, nil
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String returns the YYYY-MM-DD form, or "" for the zero date.
func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Format(validate.DateLayout)
}

// Ptr returns the date as a nullable time for storage drivers.
func (date Date) Ptr() *time.Time {
	if date.IsZero() {
		return nil
	}
	t := date.Time
	return &t
}

// MarshalJSON implements [json.Marshaler].
func (date Date) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(date.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. Null and "" decode to the zero date.
func (date *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*date = Date{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == "" {
		*date = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}

// # Field Identifiers

// Wire field names, reused as validation error keys.
const (
	FieldUsername = "Username"
	FieldPassword = "Password"
	FieldEmail    = "Email"
	FieldBirthday = "Birthday"
)
