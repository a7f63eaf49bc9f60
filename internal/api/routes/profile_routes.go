package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the candidate profile routes.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileHandler handlers.ProfileHandlerInterface, sessionAuth, requireCandidate gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(sessionAuth, requireCandidate)
	{
		profile.GET("", profileHandler.GetMyProfile)
		profile.PUT("", profileHandler.SaveMyProfile)
	}
}
