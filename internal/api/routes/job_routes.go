package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings.
// Listing and reading are public; writes require an admin, applying requires a candidate.
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, applicationHandler handlers.ApplicationHandlerInterface, sessionAuth, requireAdmin, requireCandidate gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)

		jobs.POST("", sessionAuth, requireAdmin, jobHandler.CreateJob)
		jobs.PATCH("/:id", sessionAuth, requireAdmin, jobHandler.UpdateJob)
		jobs.PATCH("/:id/status", sessionAuth, requireAdmin, jobHandler.UpdateJobStatus)

		jobs.POST("/:id/applications", sessionAuth, requireCandidate, applicationHandler.Apply)
		jobs.GET("/:id/applications", sessionAuth, requireAdmin, applicationHandler.ListByJob)
	}
}
