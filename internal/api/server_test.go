// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/api"
	"github.com/taibuivan/myflix/internal/auth"
	"github.com/taibuivan/myflix/internal/movie"
	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/config"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/user"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// # Test Stores

type userStore struct {
	mu    sync.Mutex
	users map[string]user.User
}

func (store *userStore) FindByUsername(_ context.Context, username string) (*user.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	found, ok := store.users[username]
	if !ok {
		return nil, nil
	}
	return &found, nil
}

func (store *userStore) Create(_ context.Context, account *user.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	account.ID = "u-" + account.Username
	store.users[account.Username] = *account
	return nil
}

func (store *userStore) Update(_ context.Context, username string, fields user.UpdateFields) (*user.User, error) {
	return store.mutate(username, func(account *user.User) {
		if fields.Email != nil {
			account.Email = *fields.Email
		}
	})
}

func (store *userStore) Delete(_ context.Context, username string) (*user.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	found, ok := store.users[username]
	if !ok {
		return nil, apperr.NotFound("User " + username)
	}
	delete(store.users, username)
	return &found, nil
}

func (store *userStore) AddFavorite(_ context.Context, username, movieID string) (*user.User, error) {
	return store.mutate(username, func(account *user.User) {
		account.FavoriteMovies = append(slices.Clone(account.FavoriteMovies), movieID)
	})
}

func (store *userStore) RemoveFavorite(_ context.Context, username, movieID string) (*user.User, error) {
	return store.mutate(username, func(account *user.User) {
		account.FavoriteMovies = slices.DeleteFunc(slices.Clone(account.FavoriteMovies), func(id string) bool { return id == movieID })
	})
}

func (store *userStore) mutate(username string, apply func(*user.User)) (*user.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	found, ok := store.users[username]
	if !ok {
		return nil, apperr.NotFound("User " + username)
	}
	apply(&found)
	store.users[username] = found
	return &found, nil
}

type movieStore struct{}

var inception = &movie.Movie{
	ID:       "abc123",
	Title:    "Inception",
	Genre:    movie.Genre{Name: "Science Fiction"},
	Director: movie.Director{Name: "Christopher Nolan", Birth: "1970"},
}

func (movieStore) ListMovies(context.Context) ([]*movie.Movie, error) {
	return []*movie.Movie{inception}, nil
}

func (movieStore) GetMovie(_ context.Context, id string) (*movie.Movie, error) {
	if id == inception.ID {
		return inception, nil
	}
	return nil, nil
}

func (movieStore) ListByGenre(_ context.Context, genre string) ([]*movie.Movie, error) {
	if genre == inception.Genre.Name {
		return []*movie.Movie{inception}, nil
	}
	return []*movie.Movie{}, nil
}

func (movieStore) GetDirector(_ context.Context, name string) (*movie.Director, error) {
	if name == inception.Director.Name {
		return &inception.Director, nil
	}
	return nil, nil
}

// # Harness

func newTestServer(t *testing.T, checks ...api.Check) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "test", TokenTTL: time.Hour}
	tokens, err := sec.NewTokenService("test-secret", "myflix")
	require.NoError(t, err)

	m := metrics.New()
	users := &userStore{users: make(map[string]user.User)}

	liveness, readiness := api.NewHealthHandlers(checks, discard)
	server := api.NewServer(ctx, cfg, discard, tokens, m, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(users, tokens, cfg.TokenTTL, m)),
		Users:     user.NewHandler(user.NewService(users, discard)),
		Movies:    movie.NewHandler(movie.NewService(movieStore{}, discard)),
	})
	return server.Handler()
}

func call(t *testing.T, handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// # Tests

func TestServer_Health(t *testing.T) {
	handler := newTestServer(t)

	recorder := call(t, handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)

	recorder = call(t, handler, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t,
		api.Check{Name: "postgres", Ping: func(context.Context) error { return nil }},
		api.Check{Name: "redis", Ping: func(context.Context) error { return errors.New("dial tcp: refused") }},
	)

	recorder := call(t, handler, http.MethodGet, "/ready", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var body struct {
		Status string `json:"status"`
		Checks []struct {
			Name string `json:"name"`
			OK   bool   `json:"ok"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	require.Len(t, body.Checks, 2)
	assert.True(t, body.Checks[0].OK)
	assert.False(t, body.Checks[1].OK)
}

func TestServer_CatalogRequiresToken(t *testing.T) {
	handler := newTestServer(t)

	for _, target := range []string{"/movies", "/movies/abc123", "/movies/genres/Drama", "/directors/Christopher%20Nolan"} {
		recorder := call(t, handler, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, target)
	}
}

func TestServer_EndToEnd(t *testing.T) {
	handler := newTestServer(t)

	// Register
	recorder := call(t, handler, http.MethodPost, "/users",
		`{"Username":"alice","Password":"secret123","Email":"alice@example.com","Birthday":"1990-04-12"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Login
	recorder = call(t, handler, http.MethodPost, "/login?Username=alice&Password=wrong", "", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `"token"`)

	recorder = call(t, handler, http.MethodPost, "/login?Username=alice&Password=secret123", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var session struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"Username"`
			Birthday string `json:"Birthday"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, "1990-04-12", session.User.Birthday)

	// Catalog
	recorder = call(t, handler, http.MethodGet, "/movies", "", session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Title":"Inception"`)

	recorder = call(t, handler, http.MethodGet, "/directors/Christopher%20Nolan", "", session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Birth":"1970"`)

	// Favorites
	recorder = call(t, handler, http.MethodPost, "/users/alice/movies/abc123", "", session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = call(t, handler, http.MethodGet, "/users/alice/favorites", "", session.Token)
	assert.JSONEq(t, `["abc123"]`, recorder.Body.String())

	recorder = call(t, handler, http.MethodDelete, "/users/alice/movies/abc123", "", session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = call(t, handler, http.MethodGet, "/users/alice/favorites", "", session.Token)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	// Request id is echoed
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestServer(t)

	call(t, handler, http.MethodGet, "/health", "", "")
	call(t, handler, http.MethodPost, "/login?Username=ghost&Password=x", "", "")

	recorder := call(t, handler, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `myflix_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `myflix_login_attempts_total{outcome="failure"} 1`)
}
