package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSavedJobRoutes registers the candidate bookmark routes.
func RegisterSavedJobRoutes(rg *gin.RouterGroup, savedJobHandler handlers.SavedJobHandlerInterface, sessionAuth, requireCandidate gin.HandlerFunc) {
	savedJobs := rg.Group("/saved-jobs")
	savedJobs.Use(sessionAuth, requireCandidate)
	{
		savedJobs.GET("", savedJobHandler.ListSavedJobs)
		savedJobs.POST("", savedJobHandler.SaveJob)
		savedJobs.DELETE("/:id", savedJobHandler.RemoveSavedJob)
	}
}
