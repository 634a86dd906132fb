package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/expenso/expenso-server/internal/mocks"
	"github.com/expenso/expenso-server/internal/model"
	"github.com/expenso/expenso-server/internal/testutil"
)

func makeExpenseView(id, ownerID, categoryID uuid.UUID) model.ExpenseView {
	return model.ExpenseView{
		Expense: model.Expense{
			ID:         id,
			OwnerID:    ownerID,
			CategoryID: categoryID,
			Title:      "Lunch",
			Amount:     12.5,
			Date:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		CategoryName: "Food",
	}
}

func expenseJSON(id, ownerID, categoryID uuid.UUID) string {
	return `{
		"id":"` + id.String() + `",
		"title":"Lunch",
		"amount":12.5,
		"date":"2025-03-14",
		"userId":"` + ownerID.String() + `",
		"categoryId":"` + categoryID.String() + `",
		"category":"Food"
	}`
}

func TestExpense_List(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	expenseID := uuid.New()
	categoryID := uuid.New()

	t.Run("returns owned expenses with count", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("List", mock.Anything, ownerID).
			Return([]model.ExpenseView{makeExpenseView(expenseID, ownerID, categoryID)}, nil)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.List(rec, newAuthedRequest(http.MethodGet, "/expenses", "", ownerID, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"data":[`+expenseJSON(expenseID, ownerID, categoryID)+`],"meta":{"count":1}}`, rec.Body.String())
	})

	t.Run("empty list has zero count", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("List", mock.Anything, ownerID).Return([]model.ExpenseView{}, nil)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.List(rec, newAuthedRequest(http.MethodGet, "/expenses", "", ownerID, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"data":[],"meta":{"count":0}}`, rec.Body.String())
	})
}

func TestExpense_Get(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	expenseID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name       string
		id         string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			id:         expenseID.String(),
			wantStatus: http.StatusOK,
			wantBody:   expenseJSON(expenseID, ownerID, categoryID),
		},
		{
			name:       "not owned by caller",
			id:         expenseID.String(),
			svcErr:     model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Expense not found"}`,
		},
		{
			name:       "malformed id",
			id:         "42",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Expense not found"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.ExpenseService{}
			svc.On("Get", mock.Anything, expenseID, ownerID).
				Return(makeExpenseView(expenseID, ownerID, categoryID), tt.svcErr).
				Maybe()

			h := NewExpense(svc, testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Get(rec, newAuthedRequest(http.MethodGet, "/expenses/"+tt.id, "", ownerID, tt.id))

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestExpense_Create(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	expenseID := uuid.New()
	categoryID := uuid.New()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("Create", mock.Anything, model.CreateExpenseParams{
			OwnerID:    ownerID,
			Title:      "Lunch",
			Amount:     12.5,
			CategoryID: categoryID,
			Date:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		}).Return(makeExpenseView(expenseID, ownerID, categoryID), nil)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, newAuthedRequest(http.MethodPost, "/expenses",
			`{"title":"Lunch","amount":12.5,"categoryId":"`+categoryID.String()+`","date":"2025-03-14"}`,
			ownerID, ""))

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, expenseJSON(expenseID, ownerID, categoryID), rec.Body.String())
	})

	t.Run("missing fields rejected before the service runs", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, newAuthedRequest(http.MethodPost, "/expenses",
			`{"title":"Lunch","amount":12.5}`, ownerID, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Title, amount, categoryId, and date are required"}`, rec.Body.String())
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("malformed category id", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, newAuthedRequest(http.MethodPost, "/expenses",
			`{"title":"Lunch","amount":12.5,"categoryId":"nope","date":"2025-03-14"}`, ownerID, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Invalid category"}`, rec.Body.String())
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("malformed date", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, newAuthedRequest(http.MethodPost, "/expenses",
			`{"title":"Lunch","amount":12.5,"categoryId":"`+categoryID.String()+`","date":"14/03/2025"}`, ownerID, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Date must use the YYYY-MM-DD format"}`, rec.Body.String())
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("category owned by another user", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("Create", mock.Anything, mock.Anything).
			Return(model.ExpenseView{}, model.ErrInvalidReference)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, newAuthedRequest(http.MethodPost, "/expenses",
			`{"title":"Lunch","amount":12.5,"categoryId":"`+categoryID.String()+`","date":"2025-03-14"}`,
			ownerID, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Invalid category"}`, rec.Body.String())
	})
}

func TestExpense_Update(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	expenseID := uuid.New()
	categoryID := uuid.New()
	amount := 20.0

	t.Run("partial update", func(t *testing.T) {
		t.Parallel()

		updated := makeExpenseView(expenseID, ownerID, categoryID)
		updated.Amount = amount

		svc := &mocks.ExpenseService{}
		svc.On("Update", mock.Anything, model.UpdateExpenseParams{
			ID:      expenseID,
			OwnerID: ownerID,
			Amount:  &amount,
		}).Return(updated, nil)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Update(rec, newAuthedRequest(http.MethodPut, "/expenses/"+expenseID.String(),
			`{"amount":20}`, ownerID, expenseID.String()))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{
			"id":"`+expenseID.String()+`",
			"title":"Lunch",
			"amount":20,
			"date":"2025-03-14",
			"userId":"`+ownerID.String()+`",
			"categoryId":"`+categoryID.String()+`",
			"category":"Food"
		}`, rec.Body.String())
	})

	t.Run("not owned by caller", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("Update", mock.Anything, mock.Anything).Return(model.ExpenseView{}, model.ErrNotFound)

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Update(rec, newAuthedRequest(http.MethodPut, "/expenses/"+expenseID.String(),
			`{"amount":20}`, ownerID, expenseID.String()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Expense not found"}`, rec.Body.String())
	})

	t.Run("negative amount", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.ExpenseService{}
		svc.On("Update", mock.Anything, mock.Anything).
			Return(model.ExpenseView{}, model.NewValidationError("Amount must be positive"))

		h := NewExpense(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Update(rec, newAuthedRequest(http.MethodPut, "/expenses/"+expenseID.String(),
			`{"amount":-1}`, ownerID, expenseID.String()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Amount must be positive"}`, rec.Body.String())
	})
}

func TestExpense_Delete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	expenseID := uuid.New()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Expense deleted successfully"}`,
		},
		{
			name:       "not owned by caller",
			svcErr:     model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Expense not found"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.ExpenseService{}
			svc.On("Delete", mock.Anything, expenseID, ownerID).Return(tt.svcErr)

			h := NewExpense(svc, testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Delete(rec, newAuthedRequest(http.MethodDelete, "/expenses/"+expenseID.String(), "", ownerID, expenseID.String()))

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
