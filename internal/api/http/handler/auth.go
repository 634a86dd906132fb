package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, string, error)
	Login(ctx context.Context, params model.LoginParams) (model.User, string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// Register creates a user account and returns it with a bearer token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, tokenString, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"error", err.Error())
		handleError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{
		User:  newUserResponse(user),
		Token: tokenString,
	})
}

// Login verifies credentials and returns the user with a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, tokenString, err := h.authService.Login(r.Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"error", err.Error())
		handleError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{
		User:  newUserResponse(user),
		Token: tokenString,
	})
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}
