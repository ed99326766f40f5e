// chatline is a real-time chat backend: JSON endpoints for
// authentication, user listing, and messaging, plus a WebSocket channel
// for live message delivery and presence.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/assets"
	"github.com/user/chatline-go/auth"
	"github.com/user/chatline-go/config"
	"github.com/user/chatline-go/db"
	"github.com/user/chatline-go/messages"
	"github.com/user/chatline-go/presence"
	"github.com/user/chatline-go/realtime"
	"github.com/user/chatline-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	assetStore, err := assets.NewS3Store(context.Background(), cfg.Assets)
	if err != nil {
		log.Fatalf("failed to initialize asset store: %v", err)
	}

	// Live channel: one hub per process, owning the presence registry.
	hub := realtime.NewHub(presence.NewRegistry())

	tokenCodec := auth.NewTokenCodec(*cfg.Auth)
	authService := auth.NewAuthService(auth.NewPostgresUserStore(pool))
	authHandlers := auth.NewHandlers(authService, tokenCodec, cfg.Server)

	userService := users.NewUserService(users.NewPostgresUserDirectory(pool), assetStore)
	userHandlers := users.NewUserHandlers(userService)

	messageService := messages.NewService(messages.NewPostgresMessageStore(pool), assetStore, hub)
	messageHandlers := messages.NewHandlers(messageService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// Cookies require an exact origin; a wildcard would break credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Convert handler panics into the standard error body.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	sessionGuard := auth.SessionGuard(tokenCodec, authService)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", authHandlers.HandleSignUp())
		r.Post("/signin", authHandlers.HandleSignIn())
		r.Get("/signout", authHandlers.HandleSignOut())
		r.With(sessionGuard).Get("/check", authHandlers.HandleCheckAuth())
	})

	r.Route("/api/v1/user", func(r chi.Router) {
		r.Use(sessionGuard)
		r.Get("/", userHandlers.HandleListUsers())
		r.Put("/update-profile", userHandlers.HandleUpdateProfile())
	})

	r.Route("/api/v1/message", func(r chi.Router) {
		r.Use(sessionGuard)
		messageHandlers.RegisterRoutes(r)
	})

	r.Get("/ws", hub.HandleWebSocket(cfg.Server.ClientOrigin))

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hub.Shutdown()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"status":"error","message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
