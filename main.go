package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"asistanportal/internal/config"
	"asistanportal/internal/content"
	"asistanportal/internal/database"
	"asistanportal/internal/logger"
	"asistanportal/internal/services"
	"asistanportal/internal/session"
	"asistanportal/internal/web"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Ensure the directory holding the database file exists
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	userService := services.NewUserService(db)
	resultService := services.NewResultService(db)

	if err := userService.SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed demo accounts: %v", err)
	}

	// Load the case bank and quiz bank once; they stay immutable until restart
	store, err := content.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	// Set up the session manager and the web server
	sessionManager := session.NewManager(cfg.SessionSecret, cfg.SecureCookies)
	server, err := web.NewServer(userService, resultService, store, sessionManager)
	if err != nil {
		log.Fatalf("Failed to set up web server: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: server.Router(),
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
