package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rbarbosa/accounts-api/internal/api/handlers"
	"github.com/rbarbosa/accounts-api/internal/api/middleware"
	"github.com/rbarbosa/accounts-api/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	accountHandler := handlers.NewAccountHandler(services.Account)

	r.Route("/auth", func(r chi.Router) {
		// Public routes
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Tokens))
			r.Get("/profile", accountHandler.Profile)
			r.Put("/update", accountHandler.Update)
			r.Delete("/delete", accountHandler.Delete)
		})
	})

	return r
}
