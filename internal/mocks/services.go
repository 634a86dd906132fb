package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/expenso/expenso-server/internal/model"
)

// AuthService is a mock implementation of the handler's AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, params model.LoginParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

// CategoryService is a mock implementation of the handler's CategoryService.
type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryService) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryService) Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryService) Update(ctx context.Context, params model.UpdateCategoryParams) (model.Category, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryService) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// ExpenseService is a mock implementation of the handler's ExpenseService.
type ExpenseService struct {
	mock.Mock
}

func (m *ExpenseService) List(ctx context.Context, ownerID uuid.UUID) ([]model.ExpenseView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseView), args.Error(1)
}

func (m *ExpenseService) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.ExpenseView, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseService) Create(ctx context.Context, params model.CreateExpenseParams) (model.ExpenseView, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseService) Update(ctx context.Context, params model.UpdateExpenseParams) (model.ExpenseView, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.ExpenseView), args.Error(1)
}

func (m *ExpenseService) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
