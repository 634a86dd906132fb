package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseStore defines persistence operations for expenses.
// Every read and mutation is scoped by the owning user. Create and
// Update return the expense joined with its category name, read on
// the same connection as the write.
type ExpenseStore interface {
	Create(ctx context.Context, expense Expense) (ExpenseView, error)
	GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (ExpenseView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ExpenseView, error)
	Update(ctx context.Context, expense Expense) (ExpenseView, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// Expense represents a stored expense row.
type Expense struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Title      string
	Amount     float64
	Date       time.Time
	CreatedAt  time.Time
}

// ExpenseView is an expense joined with its category name.
type ExpenseView struct {
	Expense
	CategoryName string
}

// CreateExpenseParams contains parameters to create an expense.
type CreateExpenseParams struct {
	OwnerID    uuid.UUID
	Title      string
	Amount     float64
	CategoryID uuid.UUID
	Date       time.Time
}

// UpdateExpenseParams contains parameters for a partial expense update.
// Nil fields keep their stored values.
type UpdateExpenseParams struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      *string
	Amount     *float64
	CategoryID *uuid.UUID
	Date       *time.Time
}
