package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/config"
	"eso-store-web/internal/handler"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/router"
	"eso-store-web/internal/session"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting ESO store web...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize session store based on config
	var sessionStore session.Store
	switch cfg.Sessions.StoreType {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Sessions.RedisAddress(),
			Password: cfg.Sessions.RedisPassword,
			DB:       cfg.Sessions.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		store, err := session.NewRedisStore(ctx, redisClient)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize Redis session store: %v", err)
		}
		sessionStore = store
		log.Println("Redis session store initialized")
	case "mysql":
		db, err := sql.Open("mysql", cfg.Sessions.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to open MySQL: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping MySQL: %v", err)
		}
		store, err := session.NewMySQLStore(db)
		if err != nil {
			log.Fatalf("Failed to initialize MySQL session store: %v", err)
		}
		sessionStore = store
		log.Println("MySQL session store initialized")
	case "memory":
		sessionStore = session.NewMemoryStore()
		log.Println("In-memory session store initialized")
	default: // sqlite
		store, err := session.NewSQLiteStore(cfg.Sessions.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite session store: %v", err)
		}
		sessionStore = store
		log.Println("SQLite session store initialized")
	}
	defer sessionStore.Close()

	// Expired-session janitor (Redis expires keys on its own)
	var janitor *session.Janitor
	if cfg.Sessions.StoreType != "redis" {
		janitor = session.NewJanitor(sessionStore, cfg.Sessions.SweepEvery)
		janitor.Start()
	}

	sessions := session.NewManager(sessionStore, cfg.Sessions.CookieName, cfg.Sessions.SecureCookie, cfg.Sessions.TTL)

	// Backend API client
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	log.Printf("Backend client initialized (base URL: %s)", cfg.Backend.BaseURL)

	// Templates and flash messages
	templates := handler.NewTemplateCache()
	if err := templates.Load(cfg.App.TemplateDir); err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	flash := handler.NewFlash(cfg.Flash.Secret)
	renderer := handler.NewRenderer(templates, flash, sessions)

	// Handlers
	statusHandler := handler.New()
	catalogHandler := handler.NewCatalogHandler(client, renderer)
	cosmeticHandler := handler.NewCosmeticHandler(client, renderer)
	inventoryHandler := handler.NewInventoryHandler(client, renderer)
	transactionsHandler := handler.NewTransactionsHandler(client, renderer)
	bundleHandler := handler.NewBundleHandler(client, sessions, renderer)
	storeHandler := handler.NewStoreHandler(client, sessions)
	authHandler := handler.NewAuthHandler(client, sessions, renderer)
	usersHandler := handler.NewUsersHandler(client, renderer)

	// Create router
	r := router.New(router.Config{
		Handler:             statusHandler,
		CatalogHandler:      catalogHandler,
		CosmeticHandler:     cosmeticHandler,
		InventoryHandler:    inventoryHandler,
		TransactionsHandler: transactionsHandler,
		BundleHandler:       bundleHandler,
		StoreHandler:        storeHandler,
		AuthHandler:         authHandler,
		UsersHandler:        usersHandler,
		SessionMiddleware:   middleware.LoadSession(sessions),
		StaticDir:           cfg.App.StaticDir,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if janitor != nil {
		janitor.Stop()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	fmt.Println("Goodbye!")
}
