package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/expenso/expenso-server/internal/model"
)

var _ model.ExpenseStore = (*ExpenseRepository)(nil)

type ExpenseRepository struct {
	db *Connection
}

func NewExpenseRepository(db *Connection) *ExpenseRepository {
	return &ExpenseRepository{
		db: db,
	}
}

const expenseViewQuery = `SELECT e.id, e.owner_id, e.category_id, e.title, e.amount, e.date, e.created_at, c.name
	FROM expenses e
	JOIN categories c ON c.id = e.category_id`

func scanExpenseView(row pgx.Row) (model.ExpenseView, error) {
	var view model.ExpenseView
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.CategoryID, &view.Title, &view.Amount, &view.Date, &view.CreatedAt,
		&view.CategoryName,
	)
	return view, err
}

// Create inserts the expense and reads it back joined with its
// category name on the same connection.
func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (model.ExpenseView, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	query := `INSERT INTO expenses (id, owner_id, category_id, title, amount, date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = conn.Exec(ctx, query,
		expense.ID, expense.OwnerID, expense.CategoryID, expense.Title, expense.Amount, expense.Date, expense.CreatedAt,
	)
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to create expense: %w", err)
	}

	view, err := scanExpenseView(conn.QueryRow(ctx, expenseViewQuery+` WHERE e.id = $1`, expense.ID))
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to reload expense: %w", err)
	}

	return view, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.ExpenseView, error) {
	view, err := scanExpenseView(r.db.QueryRow(ctx, expenseViewQuery+` WHERE e.id = $1 AND e.owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ExpenseView{}, model.ErrNotFound
		}
		return model.ExpenseView{}, fmt.Errorf("failed to get expense by id: %w", err)
	}

	return view, nil
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ExpenseView, error) {
	rows, err := r.db.Query(ctx, expenseViewQuery+` WHERE e.owner_id = $1 ORDER BY e.date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	views := []model.ExpenseView{}
	for rows.Next() {
		view, err := scanExpenseView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	return views, nil
}

// Update writes the expense and reads it back joined with its category
// name on the same connection.
func (r *ExpenseRepository) Update(ctx context.Context, expense model.Expense) (model.ExpenseView, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	query := `UPDATE expenses SET category_id = $3, title = $4, amount = $5, date = $6
			  WHERE id = $1 AND owner_id = $2`

	tag, err := conn.Exec(ctx, query,
		expense.ID, expense.OwnerID, expense.CategoryID, expense.Title, expense.Amount, expense.Date,
	)
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ExpenseView{}, model.ErrNotFound
	}

	view, err := scanExpenseView(conn.QueryRow(ctx, expenseViewQuery+` WHERE e.id = $1`, expense.ID))
	if err != nil {
		return model.ExpenseView{}, fmt.Errorf("failed to reload expense: %w", err)
	}

	return view, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
