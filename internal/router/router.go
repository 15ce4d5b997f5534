package router

import (
	"net/http"

	"eso-store-web/internal/handler"
	"eso-store-web/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler             *handler.Handler
	CatalogHandler      *handler.CatalogHandler
	CosmeticHandler     *handler.CosmeticHandler
	InventoryHandler    *handler.InventoryHandler
	TransactionsHandler *handler.TransactionsHandler
	BundleHandler       *handler.BundleHandler
	StoreHandler        *handler.StoreHandler
	AuthHandler         *handler.AuthHandler
	UsersHandler        *handler.UsersHandler
	SessionMiddleware   func(http.Handler) http.Handler
	StaticDir           string
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	if cfg.SessionMiddleware != nil {
		r.Use(cfg.SessionMiddleware)
	}

	// Static assets
	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "./web/static"
	}
	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// PUBLIC pages
	r.Get("/", cfg.CatalogHandler.List)
	r.Get("/cosmetics/{id}", cfg.CosmeticHandler.Detail)
	r.Get("/bundles", cfg.BundleHandler.List)
	r.Get("/bundles/{id}", cfg.BundleHandler.Detail)
	r.Get("/users", cfg.UsersHandler.List)

	// Auth pages
	r.Get("/login", cfg.AuthHandler.LoginForm)
	r.Post("/login", cfg.AuthHandler.Login)
	r.Get("/register", cfg.AuthHandler.RegisterForm)
	r.Post("/register", cfg.AuthHandler.Register)
	r.Post("/logout", cfg.AuthHandler.Logout)

	// GUARDED pages (route guard redirects to /login with the intended
	// destination preserved)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Get("/inventory", cfg.InventoryHandler.List)
		r.Get("/transactions", cfg.TransactionsHandler.List)
	})

	// JSON action API used by the page scripts
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		if cfg.Handler != nil {
			r.Get("/status", cfg.Handler.Status)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSessionAPI)

			r.Post("/store/purchase", cfg.StoreHandler.Purchase)
			r.Post("/store/refund", cfg.StoreHandler.Refund)
			r.Post("/bundles", cfg.BundleHandler.Create)
			r.Get("/bundles/catalog", cfg.BundleHandler.CatalogOptions)
		})
	})

	return r
}
