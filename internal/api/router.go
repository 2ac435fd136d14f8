package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rakhadjo/bookshelf-be/internal/api/handlers"
	"github.com/rakhadjo/bookshelf-be/internal/auth"
	"github.com/rakhadjo/bookshelf-be/internal/store"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenService, credentials store.CredentialStoreProvider, books store.BookRepositoryProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(credentials, tokens)
	bookHandler := handlers.NewBookHandler(books)

	// Registration and login are the only unauthenticated endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Every /books route requires a valid token before any handler runs
	r.Route("/books", func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Get("/", bookHandler.List)
		r.Post("/", bookHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bookHandler.Get)
			r.Put("/", bookHandler.Update)
			r.Delete("/", bookHandler.Delete)
		})
	})

	return r
}
