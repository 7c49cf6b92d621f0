// Package router exposes the user service over HTTP with chi. User routes
// are mounted under the configured context path; /ping stays at the root.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	"github.com/patric-chuzhbe/mobileappws/internal/gzippedhttp"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/service"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

const maxRequestBodyBytes = 1 << 20

type userService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (*user.User, error)

	Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error)

	GetUser(ctx context.Context, userID, principalID string) (*user.User, error)

	UpdateUser(
		ctx context.Context,
		userID,
		principalID string,
		request models.UpdateUserRequest,
	) (*user.User, error)

	DeleteUser(ctx context.Context, userID, principalID string) error

	VerifyEmail(ctx context.Context, userID string) error

	Ping(ctx context.Context) error
}

type authenticator interface {
	AuthenticateUser(h http.Handler) http.Handler
}

type subnetGuard interface {
	TrustedSubnetOnly(h http.Handler) http.Handler
}

// Router holds the HTTP handlers of the service.
type Router struct {
	svc userService
}

// New builds the HTTP handler tree.
func New(
	svc userService,
	theAuth authenticator,
	guard subnetGuard,
	contextPath string,
) *chi.Mux {
	myRouter := &Router{svc: svc}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		logger.WithLoggingHTTPMiddleware,
		middleware.Recoverer,
		gzippedhttp.UngzipRequest,
		gzippedhttp.GzipJSONResponse,
	)

	router.Get(`/ping`, myRouter.GetPing)

	userRoutes := func(r chi.Router) {
		r.Post(`/users`, myRouter.PostUsers)
		r.Post(`/users/login`, myRouter.PostUsersLogin)

		r.With(theAuth.AuthenticateUser, requireWellFormedUserID).Get(`/users/{userId}`, myRouter.GetUser)
		r.With(theAuth.AuthenticateUser, requireWellFormedUserID).Put(`/users/{userId}`, myRouter.PutUser)
		r.With(theAuth.AuthenticateUser, requireWellFormedUserID).Delete(`/users/{userId}`, myRouter.DeleteUser)

		r.With(guard.TrustedSubnetOnly, requireWellFormedUserID).Put(
			`/internal/users/{userId}/email-verification`,
			myRouter.PutEmailVerification,
		)
	}

	if contextPath == "" {
		router.Group(userRoutes)
	} else {
		router.Route(contextPath, userRoutes)
	}

	return router
}

// requireWellFormedUserID answers 404 for a {userId} that Generate could
// not have produced, before it reaches the storage.
func requireWellFormedUserID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		if !idgen.IsValid(chi.URLParam(request, "userId")) {
			writeError(response, models.ErrNotFound)
			return
		}

		h.ServeHTTP(response, request)
	})
}

// GetPing answers 200 when the storage is reachable.
func (router *Router) GetPing(response http.ResponseWriter, request *http.Request) {
	if err := router.svc.Ping(request.Context()); err != nil {
		logger.Log.Errorw("error while `router.svc.Ping()` calling", "error", err)
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	response.WriteHeader(http.StatusOK)
}

// PostUsers registers a new user.
func (router *Router) PostUsers(response http.ResponseWriter, request *http.Request) {
	var requestDTO models.CreateUserRequest
	if !decodeJSONBody(response, request, &requestDTO) {
		return
	}

	created, err := router.svc.CreateUser(request.Context(), requestDTO)
	if err != nil {
		writeError(response, err)
		return
	}

	writeJSON(response, http.StatusOK, service.ToUserResponse(created))
}

// PostUsersLogin answers a successful login with the bearer token in the
// Authorization header and the user id in the UserID header.
func (router *Router) PostUsersLogin(response http.ResponseWriter, request *http.Request) {
	var requestDTO models.LoginRequest
	if !decodeJSONBody(response, request, &requestDTO) {
		return
	}

	result, err := router.svc.Login(request.Context(), requestDTO)
	if err != nil {
		writeError(response, err)
		return
	}

	response.Header().Set("Authorization", result.Token)
	response.Header().Set("UserID", result.UserID)
	writeJSON(response, http.StatusOK, struct{}{})
}

func (router *Router) GetUser(response http.ResponseWriter, request *http.Request) {
	principalID, _ := auth.UserIDFromContext(request.Context())

	usr, err := router.svc.GetUser(request.Context(), chi.URLParam(request, "userId"), principalID)
	if err != nil {
		writeError(response, err)
		return
	}

	writeJSON(response, http.StatusOK, service.ToUserResponse(usr))
}

// PutUser updates the name fields of the user.
func (router *Router) PutUser(response http.ResponseWriter, request *http.Request) {
	principalID, _ := auth.UserIDFromContext(request.Context())

	var requestDTO models.UpdateUserRequest
	if !decodeJSONBody(response, request, &requestDTO) {
		return
	}

	usr, err := router.svc.UpdateUser(
		request.Context(),
		chi.URLParam(request, "userId"),
		principalID,
		requestDTO,
	)
	if err != nil {
		writeError(response, err)
		return
	}

	writeJSON(response, http.StatusOK, service.ToUserResponse(usr))
}

func (router *Router) DeleteUser(response http.ResponseWriter, request *http.Request) {
	principalID, _ := auth.UserIDFromContext(request.Context())

	err := router.svc.DeleteUser(request.Context(), chi.URLParam(request, "userId"), principalID)
	if err != nil {
		writeError(response, err)
		return
	}

	writeJSON(response, http.StatusOK, models.OperationStatusResponse{
		OperationName:   models.OperationNameDelete,
		OperationResult: models.OperationResultSuccess,
	})
}

// PutEmailVerification marks the user's email as verified. It is reachable
// from the trusted subnet only.
func (router *Router) PutEmailVerification(response http.ResponseWriter, request *http.Request) {
	if err := router.svc.VerifyEmail(request.Context(), chi.URLParam(request, "userId")); err != nil {
		writeError(response, err)
		return
	}

	writeJSON(response, http.StatusOK, models.OperationStatusResponse{
		OperationName:   models.OperationNameVerifyEmail,
		OperationResult: models.OperationResultSuccess,
	})
}

func decodeJSONBody(response http.ResponseWriter, request *http.Request, target interface{}) bool {
	request.Body = http.MaxBytesReader(response, request.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		logger.Log.Debugw("error while decoding the request body", "error", err)
		writeJSON(response, http.StatusBadRequest, models.ErrorResponse{Error: "malformed JSON body"})
		return false
	}

	return true
}

func writeError(response http.ResponseWriter, err error) {
	var code int
	message := err.Error()

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDuplicateEmail):
		code = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, models.ErrUnauthorized):
		code = http.StatusUnauthorized
		response.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, models.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		code = http.StatusNotFound
	default:
		logger.Log.Errorw("internal error while serving the request", "error", err)
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if code != http.StatusInternalServerError {
		logger.Log.Debugw("request failed", "status", code, "error", err)
	}

	writeJSON(response, code, models.ErrorResponse{Error: message})
}

func writeJSON(response http.ResponseWriter, code int, body interface{}) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)

	if err := json.NewEncoder(response).Encode(body); err != nil {
		logger.Log.Debugw("error while writing the response body", "error", err)
	}
}
