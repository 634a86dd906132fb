package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CategoryStore defines persistence operations for categories.
// Every read and mutation is scoped by the owning user.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (Category, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// Category represents a spending category owned by a user.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
}

// CreateCategoryParams contains parameters to create a category.
type CreateCategoryParams struct {
	OwnerID uuid.UUID
	Name    string
	Icon    string
	Color   string
}

// UpdateCategoryParams contains parameters for a partial category update.
// Nil fields keep their stored values.
type UpdateCategoryParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    *string
	Icon    *string
	Color   *string
}
