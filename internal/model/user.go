package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with credential material.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterParams contains parameters to register a new user.
type RegisterParams struct {
	Email    string
	Name     string
	Password string
}

// LoginParams contains credentials presented at login.
type LoginParams struct {
	Email    string
	Password string
}
