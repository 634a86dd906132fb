// Package router assembles the HTTP route table and middleware chain.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/expenso/expenso-server/internal/api/http/handler"
	"github.com/expenso/expenso-server/internal/api/http/middleware"
	"github.com/expenso/expenso-server/internal/logger"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	auth       *handler.Auth
	categories *handler.Category
	expenses   *handler.Expense
	health     *handler.Health
	tokens     middleware.TokenParser
	logger     *logger.Logger
}

// New creates a new Router instance.
func New(
	auth *handler.Auth,
	categories *handler.Category,
	expenses *handler.Expense,
	health *handler.Health,
	tokens middleware.TokenParser,
	logger *logger.Logger,
) *Router {
	return &Router{
		auth:       auth,
		categories: categories,
		expenses:   expenses,
		health:     health,
		tokens:     tokens,
		logger:     logger,
	}
}

// Register builds the route table. Auth routes are public; category
// and expense routes sit behind the authenticate middleware.
func (r *Router) Register() *chi.Mux {
	logging := middleware.NewLogging(r.logger)
	recovered := middleware.NewRecover(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.logger)

	mux := chi.NewRouter()
	mux.Use(recovered.Handle)
	mux.Use(logging.Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	mux.Get("/", handler.Root)
	if r.health != nil {
		mux.Get("/health", r.health.Handle)
	}

	mux.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", r.auth.Register)
		auth.Post("/login", r.auth.Login)
	})

	mux.Route("/categories", func(api chi.Router) {
		api.Use(authenticate.Handle)
		api.Get("/", r.categories.List)
		api.Post("/", r.categories.Create)
		api.Get("/{id}", r.categories.Get)
		api.Put("/{id}", r.categories.Update)
		api.Delete("/{id}", r.categories.Delete)
	})

	mux.Route("/expenses", func(api chi.Router) {
		api.Use(authenticate.Handle)
		api.Get("/", r.expenses.List)
		api.Post("/", r.expenses.Create)
		api.Get("/{id}", r.expenses.Get)
		api.Put("/{id}", r.expenses.Update)
		api.Delete("/{id}", r.expenses.Delete)
	})

	return mux
}
