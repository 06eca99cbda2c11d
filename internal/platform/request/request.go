// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/validate"
)

// maxBodyBytes caps request bodies read by [DecodeBody].
const maxBodyBytes = 1 << 20

const contentTypeForm = "application/x-www-form-urlencoded"

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
DecodeBody decodes a JSON or form-urlencoded body into target.

Form fields are mapped onto the same keys as the JSON payload, so a single
struct with json tags serves both encodings. Only the first value of each
form field is kept.

Returns:
  - error: validate.ErrInvalidJSON if the body cannot be decoded
*/
func DecodeBody(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if mediaType != contentTypeForm {
		return DecodeJSON(request, target)
	}

	if err := request.ParseForm(); err != nil {
		return validate.ErrInvalidJSON
	}

	fields := make(map[string]string, len(request.PostForm))
	for key := range request.PostForm {
		fields[key] = request.PostForm.Get(key)
	}

	// Round-trip through JSON so custom unmarshalers on target still apply
	raw, err := json.Marshal(fields)
	if err != nil {
		return validate.ErrInvalidJSON
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.

chi matches against the raw path when it holds escaped separators, so the
value is unescaped here; a value that is not valid escaping is returned as is.
*/
func Param(request *http.Request, name string) string {
	value := chi.URLParam(request, name)
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

