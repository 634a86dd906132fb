package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

// Expense implements ownership-scoped expense operations. Category
// references are validated against the caller's ownership so one user
// cannot attach expenses to another user's category.
type Expense struct {
	expenseStore  model.ExpenseStore
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

// NewExpense creates a new Expense service.
func NewExpense(expenseStore model.ExpenseStore, categoryStore model.CategoryStore, logger *logger.Logger) *Expense {
	return &Expense{
		expenseStore:  expenseStore,
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// List returns the owner's expenses ordered by date descending, each
// joined with its category name.
func (s *Expense) List(ctx context.Context, ownerID uuid.UUID) ([]model.ExpenseView, error) {
	expenses, err := s.expenseStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// Get returns an expense owned by ownerID. An expense belonging to a
// different owner is reported as not found.
func (s *Expense) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.ExpenseView, error) {
	expense, err := s.expenseStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.ExpenseView{}, err
	}

	return expense, nil
}

// Create validates fields, checks the category reference against the
// owner, and stores a new expense. Amount must be strictly positive;
// the check runs before any write.
func (s *Expense) Create(ctx context.Context, params model.CreateExpenseParams) (model.ExpenseView, error) {
	if params.Title == "" || params.CategoryID == uuid.Nil || params.Date.IsZero() {
		return model.ExpenseView{}, model.NewValidationError("Title, amount, categoryId, and date are required")
	}
	if params.Amount <= 0 {
		return model.ExpenseView{}, model.NewValidationError("Amount must be positive")
	}

	if err := s.checkCategory(ctx, params.CategoryID, params.OwnerID); err != nil {
		return model.ExpenseView{}, err
	}

	expense := model.Expense{
		ID:         uuid.New(),
		OwnerID:    params.OwnerID,
		CategoryID: params.CategoryID,
		Title:      params.Title,
		Amount:     params.Amount,
		Date:       params.Date,
		CreatedAt:  time.Now(),
	}

	view, err := s.expenseStore.Create(ctx, expense)
	if err != nil {
		s.logger.Error("Expense service: failed to create expense",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.ExpenseView{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return view, nil
}

// Update applies a partial update to an expense owned by ownerID.
// Unspecified fields keep their stored values. A changed category is
// re-validated against the owner.
func (s *Expense) Update(ctx context.Context, params model.UpdateExpenseParams) (model.ExpenseView, error) {
	view, err := s.expenseStore.GetByID(ctx, params.ID, params.OwnerID)
	if err != nil {
		return model.ExpenseView{}, err
	}

	expense := view.Expense
	if params.Title != nil {
		expense.Title = *params.Title
	}
	if params.Amount != nil {
		if *params.Amount <= 0 {
			return model.ExpenseView{}, model.NewValidationError("Amount must be positive")
		}
		expense.Amount = *params.Amount
	}
	if params.Date != nil {
		expense.Date = *params.Date
	}
	if params.CategoryID != nil {
		if err := s.checkCategory(ctx, *params.CategoryID, params.OwnerID); err != nil {
			return model.ExpenseView{}, err
		}
		expense.CategoryID = *params.CategoryID
	}

	view, err = s.expenseStore.Update(ctx, expense)
	if err != nil {
		return model.ExpenseView{}, err
	}

	return view, nil
}

// Delete removes an expense owned by ownerID.
func (s *Expense) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if err := s.expenseStore.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("Expense service: expense deleted",
		"expense_id", id,
		"owner_id", ownerID)

	return nil
}

func (s *Expense) checkCategory(ctx context.Context, categoryID uuid.UUID, ownerID uuid.UUID) error {
	_, err := s.categoryStore.GetByID(ctx, categoryID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	return nil
}
