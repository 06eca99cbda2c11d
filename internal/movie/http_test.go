// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) http.Handler {
	handler := NewHandler(NewService(repo, discard))
	router := chi.NewRouter()
	router.Mount("/movies", handler.Routes())
	router.Mount("/directors", handler.DirectorRoutes())
	return router
}

func TestHandler_Endpoints(t *testing.T) {
	router := newTestRouter(&fakeRepository{movies: catalog()})

	tests := []struct {
		name   string
		path   string
		status int
		check  func(t *testing.T, body []byte)
	}{
		{
			name:   "list movies",
			path:   "/movies",
			status: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var movies []Movie
				require.NoError(t, json.Unmarshal(body, &movies))
				assert.Len(t, movies, 2)
			},
		},
		{
			name:   "movie by id",
			path:   "/movies/m2",
			status: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"_id":"m2"`)
				assert.Contains(t, string(body), `"Title":"Memento"`)
			},
		},
		{
			name:   "unknown movie",
			path:   "/movies/nope",
			status: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"code":"NOT_FOUND"`)
				assert.Contains(t, string(body), `"error":"Movie nope not found"`)
			},
		},
		{
			name:   "genre with escaped space",
			path:   "/movies/genres/Science%20Fiction",
			status: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var movies []Movie
				require.NoError(t, json.Unmarshal(body, &movies))
				require.Len(t, movies, 1)
				assert.Equal(t, "Inception", movies[0].Title)
			},
		},
		{
			name:   "unknown genre is an empty list",
			path:   "/movies/genres/Western",
			status: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[]`, string(body))
			},
		},
		{
			name:   "director",
			path:   "/directors/Christopher%20Nolan",
			status: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"Name":"Christopher Nolan","Bio":"","Birth":"1970"}`, string(body))
			},
		},
		{
			name:   "unknown director",
			path:   "/directors/Nobody",
			status: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"error":"Director Nobody not found"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, recorder.Code)
			if tt.check != nil {
				tt.check(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestHandler_StoreFailure(t *testing.T) {
	router := newTestRouter(&fakeRepository{err: errStore})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "store unavailable")
}
