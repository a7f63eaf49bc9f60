package routes

import (
	"log"

	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/app"
	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	invitationRepo := postgres.NewInvitationRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	applicationRepo := postgres.NewApplicationRepo(app.DBPool)
	profileRepo := postgres.NewProfileRepo(app.DBPool)
	savedJobRepo := postgres.NewSavedJobRepo(app.DBPool)

	// --- Services ---
	identityService := services.NewIdentityService(userRepo, app.RedisClient)
	userService := services.NewUserService(userRepo)
	invitationService := services.NewInvitationService(invitationRepo, userRepo, app.DBPool, app.Config.App.BaseURL)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	profileService := services.NewProfileService(profileRepo, app.ObjectStore)
	savedJobService := services.NewSavedJobService(savedJobRepo, jobRepo)

	// --- Handlers ---
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	profileHandler := handlers.NewProfileHandler(profileService, app.Validator)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService, app.Validator)
	invitationHandler := handlers.NewInvitationHandler(invitationService, app.Validator)
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	webhookHandler, err := handlers.NewWebhookHandler(identityService, app.Config.Auth.WebhookSecret)
	if err != nil {
		log.Fatalf("Failed to initialize webhook handler: %v", err)
	}

	// --- Middleware ---
	sessionAuth := middleware.SessionAuthMiddleware(app.Config.Auth.SessionSecret)
	requireAdmin := middleware.RequireRole(identityService, models.RoleAdmin)
	requireCandidate := middleware.RequireRole(identityService, models.RoleCandidate)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, sessionAuth, requireAdmin, requireCandidate)
	RegisterApplicationRoutes(apiV1, applicationHandler, sessionAuth, requireAdmin, requireCandidate)
	RegisterProfileRoutes(apiV1, profileHandler, sessionAuth, requireCandidate)
	RegisterSavedJobRoutes(apiV1, savedJobHandler, sessionAuth, requireCandidate)
	RegisterInvitationRoutes(apiV1, invitationHandler, sessionAuth, requireAdmin)
	RegisterUserRoutes(apiV1, userHandler, sessionAuth, requireAdmin)
	RegisterWebhookRoutes(apiV1, webhookHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	// Register the Swagger UI handler WITHOUT the explicit URL option.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
