package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"watchhive/internal/common"
	"watchhive/internal/di"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	log.Println("Initializing application...")
	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	common.ConfigureAuth(app.Config.Auth.JWTSecret, app.Config.Auth.TokenExpiry)

	router := setupRouter(app)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	app.Close(ctx)

	log.Println("Server gracefully stopped")
}

// setupRouter configures HTTP routes
func setupRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()

	router.Use(common.CORSMiddleware)
	router.Use(common.LoggingMiddleware)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Websocket push channels skip the JSON middleware chain; the handler
	// validates the token itself (query parameter, since browsers cannot
	// set Authorization on the handshake).
	app.WSHandler.RegisterRoutes(router)

	api := router.PathPrefix("/api/v1").Subrouter()

	public := api.NewRoute().Subrouter()
	app.UserHandler.RegisterPublicRoutes(public)

	authed := api.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	app.UserHandler.RegisterRoutes(authed)
	app.MediaHandler.RegisterRoutes(authed)
	app.ListHandler.RegisterRoutes(authed)
	app.ReviewHandler.RegisterRoutes(authed)
	app.ForumHandler.RegisterRoutes(authed)
	app.PosterHandler.RegisterRoutes(authed)

	return router
}

// healthCheckHandler provides basic health check
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"watchhive-api"}`))
}
