package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInvitationRoutes registers the admin invitation routes.
// Redemption only needs a valid session: the redeemer is not an admin yet.
func RegisterInvitationRoutes(rg *gin.RouterGroup, invitationHandler handlers.InvitationHandlerInterface, sessionAuth, requireAdmin gin.HandlerFunc) {
	invitations := rg.Group("/invitations")
	invitations.Use(sessionAuth)
	{
		invitations.GET("", requireAdmin, invitationHandler.ListInvitations)
		invitations.POST("", requireAdmin, invitationHandler.IssueInvitation)
		invitations.DELETE("/:id", requireAdmin, invitationHandler.RevokeInvitation)

		invitations.POST("/redeem", invitationHandler.RedeemInvitation)
	}
}
