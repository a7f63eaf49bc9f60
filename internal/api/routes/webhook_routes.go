package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the identity-provider webhook endpoint.
// No session middleware: the svix signature is the authentication.
func RegisterWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group("/webhooks")
	{
		webhooks.POST("/identity", webhookHandler.HandleIdentityEvent)
	}
}
