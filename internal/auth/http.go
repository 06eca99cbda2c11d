// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/respond"
	"github.com/taibuivan/myflix/internal/platform/sanitize"
	"github.com/taibuivan/myflix/internal/user"
)

// Handler implements the login endpoint.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] mounted at /login.
//
// # Endpoints
//   - POST / : Authenticates and returns a token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.login)
	return router
}

// loginResponse is returned on a successful login.
type loginResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

// sessionUser is the escaped public view of the logged-in account.
type sessionUser struct {
	Username       string   `json:"Username"`
	FavoriteMovies []string `json:"FavoriteMovies"`
	Email          string   `json:"Email"`
	Birthday       string   `json:"Birthday"`
}

func newSessionUser(account *user.User) sessionUser {
	favorites := account.FavoriteMovies
	if favorites == nil {
		favorites = []string{}
	}
	return sessionUser{
		Username:       sanitize.HTML(account.Username),
		FavoriteMovies: favorites,
		Email:          sanitize.HTML(account.Email),
		Birthday:       sanitize.HTML(account.Birthday.String()),
	}
}

/*
login handles POST /login.

Credentials are read from the Username and Password query parameters; a
form-encoded body with the same keys is accepted too.

Response:
  - 200: loginResponse
  - 400: AuthenticationFailed, never with a token
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.authService.Login(request.Context(),
		request.FormValue(user.FieldUsername),
		request.FormValue(user.FieldPassword),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{
		Token: session.AccessToken,
		User:  newSessionUser(session.User),
	})
}
