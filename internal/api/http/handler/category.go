package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpctx "github.com/expenso/expenso-server/internal/api/http/context"
	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

const categoryNotFound = "Category not found"

// CategoryService defines ownership-scoped category operations.
type CategoryService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error)
	Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Category, error)
	Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error)
	Update(ctx context.Context, params model.UpdateCategoryParams) (model.Category, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// Category handles HTTP endpoints for categories.
type Category struct {
	categoryService CategoryService
	logger          *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(categoryService CategoryService, logger *logger.Logger) *Category {
	return &Category{
		categoryService: categoryService,
		logger:          logger,
	}
}

type categoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type categoryListResponse struct {
	Data []categoryResponse `json:"data"`
}

// List returns the caller's categories ordered by name.
func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	categories, err := h.categoryService.List(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("Category handler: list failed",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err, categoryNotFound)
		return
	}

	data := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategoryResponse(category))
	}

	respondJSON(w, http.StatusOK, categoryListResponse{Data: data})
}

// Get returns a single category owned by the caller.
func (h *Category) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, categoryNotFound)
		return
	}

	category, err := h.categoryService.Get(r.Context(), id, ownerID)
	if err != nil {
		handleError(w, err, categoryNotFound)
		return
	}

	respondJSON(w, http.StatusOK, newCategoryResponse(category))
}

// Create stores a new category for the caller.
func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := model.CreateCategoryParams{OwnerID: ownerID}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Icon != nil {
		params.Icon = *req.Icon
	}
	if req.Color != nil {
		params.Color = *req.Color
	}

	category, err := h.categoryService.Create(r.Context(), params)
	if err != nil {
		handleError(w, err, categoryNotFound)
		return
	}

	respondJSON(w, http.StatusCreated, newCategoryResponse(category))
}

// Update applies a partial update to a category owned by the caller.
func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, categoryNotFound)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), model.UpdateCategoryParams{
		ID:      id,
		OwnerID: ownerID,
		Name:    req.Name,
		Icon:    req.Icon,
		Color:   req.Color,
	})
	if err != nil {
		handleError(w, err, categoryNotFound)
		return
	}

	respondJSON(w, http.StatusOK, newCategoryResponse(category))
}

// Delete removes a category owned by the caller.
func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpctx.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, categoryNotFound)
		return
	}

	if err := h.categoryService.Delete(r.Context(), id, ownerID); err != nil {
		handleError(w, err, categoryNotFound)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Category deleted successfully"})
}

func newCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:    category.ID.String(),
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
}
