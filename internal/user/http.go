// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the account and favorites endpoints.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns the router mounted at /users.
//
// Registration is public; every other route runs behind protect, the
// authentication chain supplied by the server.
//
// # Endpoints
//   - POST   /                             : Register.
//   - GET    /{username}                   : Profile.
//   - PUT    /{username}                   : Partial update.
//   - DELETE /{username}                   : Delete account.
//   - GET    /{username}/favorites         : Favorite movie ids.
//   - POST   /{username}/movies/{movieID}  : Add a favorite.
//   - DELETE /{username}/movies/{movieID}  : Remove a favorite.
func (handler *Handler) Routes(protect func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.register)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(protect)
		r.Get("/{username}", handler.get)
		r.Put("/{username}", handler.update)
		r.Delete("/{username}", handler.delete)
		r.Get("/{username}/favorites", handler.favorites)
		r.Post("/{username}/movies/{movieID}", handler.addFavorite)
		r.Delete("/{username}/movies/{movieID}", handler.removeFavorite)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
	Birthday string `json:"Birthday"`
}

// updateRequest distinguishes absent fields (nil) from supplied ones.
type updateRequest struct {
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Email    *string `json:"Email"`
	Birthday *string `json:"Birthday"`
}

// registeredResponse is the registration echo. It carries no id or hash.
type registeredResponse struct {
	Username string `json:"Username"`
	Email    string `json:"Email"`
	Birthday Date   `json:"Birthday"`
}

/*
Register handles the creation of a new user account.

POST /users

Request:
  - Body: registerRequest (Username, Password, Email, Birthday), JSON or form

Response:
  - 201: registeredResponse
  - 400: DuplicateUser or undecodable body
  - 422: ValidationFailed with field errors
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeBody(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Birthday: input.Birthday,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, registeredResponse{
		Username: user.Username,
		Email:    user.Email,
		Birthday: user.Birthday,
	})
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.userService.Get(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
Update applies a partial profile change.

PUT /users/{username}

Response:
  - 201: The full updated user
  - 404: No such user
  - 422: ValidationFailed for any supplied field
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeBody(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Update(request.Context(), requestutil.Param(request, "username"), UpdateInput{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Birthday: input.Birthday,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, user)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.userService.Delete(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, fmt.Sprintf("%s was deleted.", user.Username))
}

func (handler *Handler) favorites(writer http.ResponseWriter, request *http.Request) {
	favorites, err := handler.userService.Favorites(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorites)
}

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.userService.AddFavorite(request.Context(),
		requestutil.Param(request, "username"),
		requestutil.Param(request, "movieID"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.userService.RemoveFavorite(request.Context(),
		requestutil.Param(request, "username"),
		requestutil.Param(request, "movieID"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
