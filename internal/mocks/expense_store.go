package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/expenso/expenso-server/internal/model"
)

// ExpenseStore is a mock implementation of model.ExpenseStore.
type ExpenseStore struct {
	mock.Mock
}

func (m *ExpenseStore) Create(ctx context.Context, expense model.Expense) (model.ExpenseView, error) {
	args := m.Called(ctx, expense)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseStore) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.ExpenseView, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ExpenseView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseView), args.Error(1)
}

func (m *ExpenseStore) Update(ctx context.Context, expense model.Expense) (model.ExpenseView, error) {
	args := m.Called(ctx, expense)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseStore) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
