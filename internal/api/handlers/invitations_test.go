package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupInvitationRouter() (*gin.Engine, *MockInvitationService, *handlers.InvitationHandler) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockInvitationService)
	handler := handlers.NewInvitationHandler(mockService, validator.New())
	router := gin.New()
	return router, mockService, handler
}

// setIdentity mimics the session middleware by planting provider claims in context.
func setIdentity(identity *dto.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

func TestInvitationHandler_IssueInvitation(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}

	t.Run("Success Returns Link", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations", setCurrentUser(admin), handler.IssueInvitation)

		token := uuid.New()
		mockService.On("Issue", mock.Anything, mock.MatchedBy(func(req *dto.IssueInvitationRequest) bool {
			return req.Email == "new.admin@example.com" && req.IssuerID == admin.ID
		})).Return(&models.AdminInvitation{
			ID:        uuid.New(),
			Email:     "new.admin@example.com",
			Token:     token,
			Status:    models.InvitationStatusPending,
			CreatedBy: admin.ID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, "http://localhost:3000/admin/register?token="+token.String(), nil).Once()

		payload, _ := json.Marshal(map[string]string{"email": "new.admin@example.com"})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.IssueInvitationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, token, response.Invitation.Token)
		assert.Contains(t, response.Link, token.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations", setCurrentUser(admin), handler.IssueInvitation)

		payload, _ := json.Marshal(map[string]string{"email": "not-an-email"})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email Conflict", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations", setCurrentUser(admin), handler.IssueInvitation)

		mockService.On("Issue", mock.Anything, mock.Anything).Return(nil, "", services.ErrConflict).Once()

		payload, _ := json.Marshal(map[string]string{"email": "taken@example.com"})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestInvitationHandler_RedeemInvitation(t *testing.T) {
	identity := &dto.Identity{ExternalID: "usr_redeem", Email: "redeem@example.com", Name: "Redeemer"}

	t.Run("Success Promotes Redeemer", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations/redeem", setIdentity(identity), handler.RedeemInvitation)

		token := uuid.New()
		mockService.On("Redeem", mock.Anything, mock.MatchedBy(func(req *dto.RedeemInvitationRequest) bool {
			return req.Token == token.String()
		}), identity).Return(&models.User{
			ID:    uuid.New(),
			Email: "redeem@example.com",
			Role:  models.RoleAdmin,
		}, nil).Once()

		payload, _ := json.Marshal(map[string]string{"token": token.String()})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations/redeem", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.UserResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, response.Role)
		mockService.AssertExpectations(t)
	})

	t.Run("Used Token Conflict", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations/redeem", setIdentity(identity), handler.RedeemInvitation)

		mockService.On("Redeem", mock.Anything, mock.Anything, identity).Return(nil, services.ErrInvitationExpired).Once()

		payload, _ := json.Marshal(map[string]string{"token": uuid.New().String()})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations/redeem", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("Malformed Token Fails Validation", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations/redeem", setIdentity(identity), handler.RedeemInvitation)

		payload, _ := json.Marshal(map[string]string{"token": "not-a-uuid"})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations/redeem", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No Session Identity", func(t *testing.T) {
		router, mockService, handler := setupInvitationRouter()
		router.POST("/invitations/redeem", handler.RedeemInvitation)

		payload, _ := json.Marshal(map[string]string{"token": uuid.New().String()})
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invitations/redeem", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockService.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInvitationHandler_RevokeInvitation(t *testing.T) {
	router, mockService, handler := setupInvitationRouter()
	router.DELETE("/invitations/:id", handler.RevokeInvitation)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockService.On("Revoke", mock.Anything, mock.MatchedBy(func(req *dto.RevokeInvitationRequest) bool {
			return req.ID == id
		})).Return(nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/invitations/"+id.String(), nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Unknown Invitation", func(t *testing.T) {
		id := uuid.New()
		mockService.On("Revoke", mock.Anything, mock.Anything).Return(services.ErrNotFound).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/invitations/"+id.String(), nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
