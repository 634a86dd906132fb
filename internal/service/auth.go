package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

const minPasswordLength = 6

// Auth implements registration and login on top of the user store.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a user with a bcrypt password hash and issues a
// bearer token. The plaintext password is never stored.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, string, error) {
	if params.Email == "" || params.Password == "" || params.Name == "" {
		return model.User{}, "", model.NewValidationError("Email, password, and name are required")
	}
	if len(params.Password) < minPasswordLength {
		return model.User{}, "", model.NewValidationError("Password must be at least 6 characters")
	}

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.User{}, "", model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return user, tokenString, nil
}

// Login verifies credentials and issues a bearer token. An unknown
// email and a password mismatch are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.User, string, error) {
	if params.Email == "" || params.Password == "" {
		return model.User{}, "", model.NewValidationError("Email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return user, tokenString, nil
}
