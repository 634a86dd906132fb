package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpctx "github.com/expenso/expenso-server/internal/api/http/context"
	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

const (
	expenseNotFound = "Expense not found"
	dateLayout      = "2006-01-02"
)

// ExpenseService defines ownership-scoped expense operations.
type ExpenseService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.ExpenseView, error)
	Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.ExpenseView, error)
	Create(ctx context.Context, params model.CreateExpenseParams) (model.ExpenseView, error)
	Update(ctx context.Context, params model.UpdateExpenseParams) (model.ExpenseView, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// Expense handles HTTP endpoints for expenses.
type Expense struct {
	expenseService ExpenseService
	logger         *logger.Logger
}

// NewExpense creates a new Expense handler.
func NewExpense(expenseService ExpenseService, logger *logger.Logger) *Expense {
	return &Expense{
		expenseService: expenseService,
		logger:         logger,
	}
}

type expenseRequest struct {
	Title      *string  `json:"title"`
	Amount     *float64 `json:"amount"`
	CategoryID *string  `json:"categoryId"`
	Date       *string  `json:"date"`
}

type expenseResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	UserID     string  `json:"userId"`
	CategoryID string  `json:"categoryId"`
	Category   string  `json:"category"`
}

type expenseListResponse struct {
	Data []expenseResponse `json:"data"`
	Meta listMeta          `json:"meta"`
}

type listMeta struct {
	Count int `json:"count"`
}

// List returns the caller's expenses ordered by date descending, each
// with its resolved category name.
func (h *Expense) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	expenses, err := h.expenseService.List(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("Expense handler: list failed",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err, expenseNotFound)
		return
	}

	data := make([]expenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpenseResponse(expense))
	}

	respondJSON(w, http.StatusOK, expenseListResponse{
		Data: data,
		Meta: listMeta{Count: len(data)},
	})
}

// Get returns a single expense owned by the caller.
func (h *Expense) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, expenseNotFound)
		return
	}

	expense, err := h.expenseService.Get(r.Context(), id, ownerID)
	if err != nil {
		handleError(w, err, expenseNotFound)
		return
	}

	respondJSON(w, http.StatusOK, newExpenseResponse(expense))
}

// Create stores a new expense for the caller.
func (h *Expense) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == nil || req.Amount == nil || req.CategoryID == nil || req.Date == nil {
		respondError(w, http.StatusBadRequest, "Title, amount, categoryId, and date are required")
		return
	}

	categoryID, err := uuid.Parse(*req.CategoryID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	date, err := time.Parse(dateLayout, *req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Date must use the YYYY-MM-DD format")
		return
	}

	expense, err := h.expenseService.Create(r.Context(), model.CreateExpenseParams{
		OwnerID:    ownerID,
		Title:      *req.Title,
		Amount:     *req.Amount,
		CategoryID: categoryID,
		Date:       date,
	})
	if err != nil {
		handleError(w, err, expenseNotFound)
		return
	}

	respondJSON(w, http.StatusCreated, newExpenseResponse(expense))
}

// Update applies a partial update to an expense owned by the caller.
func (h *Expense) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, expenseNotFound)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := model.UpdateExpenseParams{
		ID:      id,
		OwnerID: ownerID,
		Title:   req.Title,
		Amount:  req.Amount,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		params.CategoryID = &categoryID
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Date must use the YYYY-MM-DD format")
			return
		}
		params.Date = &date
	}

	expense, err := h.expenseService.Update(r.Context(), params)
	if err != nil {
		handleError(w, err, expenseNotFound)
		return
	}

	respondJSON(w, http.StatusOK, newExpenseResponse(expense))
}

// Delete removes an expense owned by the caller.
func (h *Expense) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, expenseNotFound)
		return
	}

	if err := h.expenseService.Delete(r.Context(), id, ownerID); err != nil {
		handleError(w, err, expenseNotFound)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Expense deleted successfully"})
}

func newExpenseResponse(expense model.ExpenseView) expenseResponse {
	return expenseResponse{
		ID:         expense.ID.String(),
		Title:      expense.Title,
		Amount:     expense.Amount,
		Date:       expense.Date.Format(dateLayout),
		UserID:     expense.OwnerID.String(),
		CategoryID: expense.CategoryID.String(),
		Category:   expense.CategoryName,
	}
}
