package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers routes for the application review pipeline.
// Candidates read their own applications; status changes are admin-only.
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, sessionAuth, requireAdmin, requireCandidate gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(sessionAuth)
	{
		applications.GET("", requireCandidate, applicationHandler.ListMine)
		applications.PATCH("/:id/status", requireAdmin, applicationHandler.UpdateStatus)
	}
}
