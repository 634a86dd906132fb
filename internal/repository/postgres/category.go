package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/expenso/expenso-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (id, owner_id, name, icon, color, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, owner_id, name, icon, color, created_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.OwnerID, category.Name, category.Icon, category.Color, category.CreatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Name, &saved.Icon, &saved.Color, &saved.CreatedAt,
	)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Category, error) {
	var category model.Category
	query := `SELECT id, owner_id, name, icon, color, created_at
			  FROM categories WHERE id = $1 AND owner_id = $2`

	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&category.ID, &category.OwnerID, &category.Name, &category.Icon, &category.Color, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	query := `SELECT id, owner_id, name, icon, color, created_at
			  FROM categories WHERE owner_id = $1 ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(
			&category.ID, &category.OwnerID, &category.Name, &category.Icon, &category.Color, &category.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	query := `UPDATE categories SET name = $3, icon = $4, color = $5
			  WHERE id = $1 AND owner_id = $2
			  RETURNING id, owner_id, name, icon, color, created_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.OwnerID, category.Name, category.Icon, category.Color,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Name, &saved.Icon, &saved.Color, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
