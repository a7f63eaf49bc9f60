package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the admin user management routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, sessionAuth, requireAdmin gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(sessionAuth, requireAdmin)
	{
		users.GET("", userHandler.GetUsers)
		users.PATCH("/:id/role", userHandler.UpdateUserRole)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}
