// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/myflix/internal/platform/apperr"
)

// Service exposes the catalog queries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListMovies(context context.Context) ([]*Movie, error) {
	return service.repo.ListMovies(context)
}

/*
GetMovie returns the movie with the given id.

Returns:
  - *Movie: The catalog entry
  - error: apperr.NotFound if no movie has this id
*/
func (service *Service) GetMovie(context context.Context, id string) (*Movie, error) {
	movie, err := service.repo.GetMovie(context, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("Movie " + id)
	}
	return movie, nil
}

// ListByGenre matches the genre name exactly. An empty result is not an error.
func (service *Service) ListByGenre(context context.Context, genre string) ([]*Movie, error) {
	if strings.TrimSpace(genre) == "" {
		return nil, apperr.BadRequest("Genre name is required")
	}
	return service.repo.ListByGenre(context, genre)
}

/*
GetDirector returns the director sub-record of the first movie credited to name.

Returns:
  - *Director: The director details
  - error: apperr.NotFound if no movie has this director
*/
func (service *Service) GetDirector(context context.Context, name string) (*Director, error) {
	director, err := service.repo.GetDirector(context, name)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, apperr.NotFound("Director " + name)
	}
	return director, nil
}
