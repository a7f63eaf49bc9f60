package handlers

import (
	"log"
	"net/http"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// InvitationHandler holds dependencies for admin invitation operations.
type InvitationHandler struct {
	service   services.InvitationService
	validator *validator.Validate
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(service services.InvitationService, validate *validator.Validate) *InvitationHandler {
	return &InvitationHandler{
		service:   service,
		validator: validate,
	}
}

// IssueInvitation godoc
// @Summary      Issue an admin invitation
// @Description  Creates a single-use invitation token for the given email and returns the redemption link. The link is shared out-of-band; no email is sent.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        invitation body      dto.IssueInvitationRequest true "Invitee email"
// @Success      201 {object}  dto.IssueInvitationResponse "Invitation created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]string "Conflict - Email already registered"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invitations [post]
// @Security     BearerAuth
func (h *InvitationHandler) IssueInvitation(c *gin.Context) {
	issuer, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.IssueInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.IssuerID = issuer.ID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	inv, link, err := h.service.Issue(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error issuing invitation for %s: %v", req.Email, err)
		respondServiceError(c, err, "Failed to issue invitation")
		return
	}
	c.JSON(http.StatusCreated, dto.IssueInvitationResponse{
		Invitation: MapInvitationModelToResponse(inv),
		Link:       link,
	})
}

// RedeemInvitation godoc
// @Summary      Redeem an invitation token
// @Description  Consumes a pending invitation and promotes the authenticated identity to admin. Requires a valid session but no prior role.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        redemption body      dto.RedeemInvitationRequest true "Invitation token"
// @Success      200 {object}  dto.UserResponse "Redeemer promoted to admin"
// @Failure      400 {object}  map[string]string "Bad Request - Malformed token"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Token Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Token expired or already used"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invitations/redeem [post]
// @Security     BearerAuth
func (h *InvitationHandler) RedeemInvitation(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RedeemInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Redeem(c.Request.Context(), &req, identity)
	if err != nil {
		log.Printf("Error redeeming invitation for %s: %v", identity.ExternalID, err)
		respondServiceError(c, err, "Failed to redeem invitation")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// RevokeInvitation godoc
// @Summary      Revoke an invitation
// @Description  Marks a pending invitation expired so its token can no longer be redeemed. Revoking a non-pending invitation is a no-op.
// @Tags         invitations
// @Produce      json
// @Param        id   path      string  true  "Invitation ID" Format(uuid)
// @Success      204 "Invitation revoked"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      404 {object}  map[string]string "Invitation Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invitations/{id} [delete]
// @Security     BearerAuth
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	req := dto.RevokeInvitationRequest{ID: id}
	if err := h.service.Revoke(c.Request.Context(), &req); err != nil {
		log.Printf("Error revoking invitation %s: %v", id, err)
		respondServiceError(c, err, "Failed to revoke invitation")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInvitations godoc
// @Summary      List invitations
// @Description  Retrieves every invitation newest-first, joined with the issuing admin.
// @Tags         invitations
// @Produce      json
// @Success      200 {array}   dto.InvitationResponse "All invitations"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invitations [get]
// @Security     BearerAuth
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing invitations: %v", err)
		respondServiceError(c, err, "Failed to retrieve invitations")
		return
	}

	resp := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		resp = append(resp, MapInvitationWithCreatorToResponse(&invitations[i]))
	}
	c.JSON(http.StatusOK, resp)
}
