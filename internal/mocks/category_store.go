package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/expenso/expenso-server/internal/model"
)

// CategoryStore is a mock implementation of model.CategoryStore.
type CategoryStore struct {
	mock.Mock
}

func (m *CategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
