package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/expenso/expenso-server/internal/mocks"
	"github.com/expenso/expenso-server/internal/model"
	"github.com/expenso/expenso-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		svcUser    model.User
		svcToken   string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"email":"a@x.com","password":"secret1","name":"Alice"}`,
			svcUser:    model.User{ID: userID, Email: "a@x.com", Name: "Alice"},
			svcToken:   "token",
			wantStatus: http.StatusCreated,
			wantBody:   `{"user":{"id":"` + userID.String() + `","email":"a@x.com","name":"Alice"},"token":"token"}`,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"a@x.com","password":"secret1","name":"Alice"}`,
			svcErr:     model.ErrEmailTaken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email already registered"}`,
		},
		{
			name:       "validation failure",
			body:       `{"email":"a@x.com","password":"short","name":"Alice"}`,
			svcErr:     model.NewValidationError("Password must be at least 6 characters"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Password must be at least 6 characters"}`,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:       "store failure",
			body:       `{"email":"a@x.com","password":"secret1","name":"Alice"}`,
			svcErr:     assertableInternalErr,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.AuthService{}
			svc.On("Register", mock.Anything, mock.Anything).Return(tt.svcUser, tt.svcToken, tt.svcErr).Maybe()

			h := NewAuth(svc, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		svcUser    model.User
		svcToken   string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			body:       `{"email":"a@x.com","password":"secret1"}`,
			svcUser:    model.User{ID: userID, Email: "a@x.com", Name: "Alice"},
			svcToken:   "token",
			wantStatus: http.StatusOK,
			wantBody:   `{"user":{"id":"` + userID.String() + `","email":"a@x.com","name":"Alice"},"token":"token"}`,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"a@x.com","password":"wrong"}`,
			svcErr:     model.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:       "malformed body",
			body:       `}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.AuthService{}
			svc.On("Login", mock.Anything, mock.Anything).Return(tt.svcUser, tt.svcToken, tt.svcErr).Maybe()

			h := NewAuth(svc, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
