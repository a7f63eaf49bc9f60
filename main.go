package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-portal-api/config"
	_ "job-portal-api/docs" // Generated swagger docs, refresh with swag init
	"job-portal-api/internal/app"
	"job-portal-api/internal/database"
	"job-portal-api/internal/objectstore"
	"job-portal-api/internal/server"

	"github.com/go-playground/validator"
)

//go:generate swag init --generalInfo main.go --output docs

// @title           Job Portal API
// @version         1.0
// @description     Job board backend: public job listings, candidate applications and profiles, admin invitations and user management. Authentication is delegated to an external identity provider.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider's session JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Initialize Object Storage (resumes bucket) ---
	objectStore, err := objectstore.NewClient(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := objectStore.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("Failed to provision resumes bucket: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		ObjectStore: objectStore,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
