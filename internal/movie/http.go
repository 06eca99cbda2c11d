// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

// Handler serves the catalog endpoints. All of them require authentication,
// which the caller applies when mounting.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /movies.
//
// # Endpoints
//   - GET /                 : All movies.
//   - GET /{movieID}        : One movie.
//   - GET /genres/{genre}   : Movies whose genre name matches exactly.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listMovies)
	router.Get("/genres/{genre}", handler.listByGenre)
	router.Get("/{movieID}", handler.getMovie)
	return router
}

// DirectorRoutes returns the router mounted at /directors.
func (handler *Handler) DirectorRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{name}", handler.getDirector)
	return router
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.ListMovies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.GetMovie(request.Context(), requestutil.Param(request, "movieID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) listByGenre(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.ListByGenre(request.Context(), requestutil.Param(request, "genre"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) getDirector(writer http.ResponseWriter, request *http.Request) {
	director, err := handler.service.GetDirector(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, director)
}
