package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	httpctx "github.com/expenso/expenso-server/internal/api/http/context"
	"github.com/expenso/expenso-server/internal/logger"
	"github.com/expenso/expenso-server/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into
// the request context. Requests without a valid token never reach the
// downstream handler.
type Authenticate struct {
	tokens TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header, validates the token and
// forwards the request with the user ID in context. The response never
// reveals why verification failed, only that it did.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			unauthorized(w, "Authentication required")
			return
		}

		userID, err := m.tokens.Parse(tokenString)
		if err != nil || userID == uuid.Nil {
			if err != nil {
				m.logger.Debug("Authenticate middleware: token rejected",
					"path", r.URL.Path,
					"error", err.Error())
			}
			unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(httpctx.SetUserID(r.Context(), userID)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", model.ErrMissingToken
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
