package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

// Category implements ownership-scoped category operations.
type Category struct {
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

// NewCategory creates a new Category service.
func NewCategory(categoryStore model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// List returns the owner's categories ordered by name.
func (s *Category) List(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	categories, err := s.categoryStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Get returns a category owned by ownerID. A category belonging to a
// different owner is reported as not found.
func (s *Category) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.Category{}, err
	}

	return category, nil
}

// Create validates fields and stores a new category for the owner.
func (s *Category) Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error) {
	if params.Name == "" || params.Icon == "" || params.Color == "" {
		return model.Category{}, model.NewValidationError("Name, icon, and color are required")
	}

	category := model.Category{
		ID:        uuid.New(),
		OwnerID:   params.OwnerID,
		Name:      params.Name,
		Icon:      params.Icon,
		Color:     params.Color,
		CreatedAt: time.Now(),
	}

	category, err := s.categoryStore.Create(ctx, category)
	if err != nil {
		s.logger.Error("Category service: failed to create category",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// Update applies a partial update to a category owned by ownerID.
// Unspecified fields keep their stored values.
func (s *Category) Update(ctx context.Context, params model.UpdateCategoryParams) (model.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, params.ID, params.OwnerID)
	if err != nil {
		return model.Category{}, err
	}

	if params.Name != nil {
		category.Name = *params.Name
	}
	if params.Icon != nil {
		category.Icon = *params.Icon
	}
	if params.Color != nil {
		category.Color = *params.Color
	}

	category, err = s.categoryStore.Update(ctx, category)
	if err != nil {
		return model.Category{}, err
	}

	return category, nil
}

// Delete removes a category owned by ownerID.
func (s *Category) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if err := s.categoryStore.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("Category service: category deleted",
		"category_id", id,
		"owner_id", ownerID)

	return nil
}
