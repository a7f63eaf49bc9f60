package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookHandler receives signed identity-provider events.
type WebhookHandler struct {
	bridge   services.IdentityService
	verifier *svix.Webhook
}

// NewWebhookHandler creates a new WebhookHandler. The signing secret comes from
// the provider's webhook endpoint settings.
func NewWebhookHandler(bridge services.IdentityService, signingSecret string) (*WebhookHandler, error) {
	verifier, err := svix.NewWebhook(signingSecret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{bridge: bridge, verifier: verifier}, nil
}

// HandleIdentityEvent godoc
// @Summary      Identity provider webhook
// @Description  Applies user.created, user.updated and user.deleted events to the local user mirror. The svix signature is verified before any action; unsigned payloads are rejected.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object}  map[string]string "Event applied"
// @Failure      400 {object}  map[string]string "Bad Request - Unverifiable or malformed payload"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /webhooks/identity [post]
func (h *WebhookHandler) HandleIdentityEvent(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read payload"})
		return
	}

	if err := h.verifier.Verify(payload, c.Request.Header); err != nil {
		log.Printf("Webhook: Rejecting payload with bad signature: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	var event dto.IdentityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
		return
	}
	var data dto.IdentityEventData
	if err := json.Unmarshal(event.Data, &data); err != nil || data.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event data"})
		return
	}

	messageID := c.GetHeader("svix-id")
	if err := h.bridge.HandleProviderEvent(c.Request.Context(), messageID, event.Type, &data); err != nil {
		log.Printf("Webhook: Error handling %s event %s: %v", event.Type, messageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
