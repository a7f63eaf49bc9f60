package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-session-secret"

// MockIdentityService is a mock type for the services.IdentityService interface
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) EnsureUser(ctx context.Context, identity *dto.Identity) (*models.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockIdentityService) HandleProviderEvent(ctx context.Context, messageID, eventType string, data *dto.IdentityEventData) error {
	args := m.Called(ctx, messageID, eventType, data)
	return args.Error(0)
}

func generateSessionToken(t *testing.T, externalID, email, name, secret string, expiration time.Duration) string {
	t.Helper()
	claims := &middleware.SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   externalID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func setupAuthRouter(bridge *MockIdentityService, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/protected", middleware.SessionAuthMiddleware(testSecret))
	if len(roles) > 0 {
		group.Use(middleware.RequireRole(bridge, roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "through"})
	})
	return router
}

func TestSessionAuthMiddleware(t *testing.T) {
	t.Run("Valid Token Passes", func(t *testing.T) {
		router := setupAuthRouter(nil)
		token := generateSessionToken(t, "usr_ok", "ok@example.com", "Ok", testSecret, time.Hour)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		router := setupAuthRouter(nil)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		router := setupAuthRouter(nil)
		token := generateSessionToken(t, "usr_ok", "ok@example.com", "Ok", "wrong-secret", time.Hour)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		router := setupAuthRouter(nil)
		token := generateSessionToken(t, "usr_ok", "ok@example.com", "Ok", testSecret, -time.Minute)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "expired")
	})
}

func TestRequireRole(t *testing.T) {
	token := generateSessionToken(t, "usr_role", "role@example.com", "Role", testSecret, time.Hour)

	t.Run("Admin Allowed On Admin Route", func(t *testing.T) {
		bridge := new(MockIdentityService)
		bridge.On("EnsureUser", mock.Anything, mock.MatchedBy(func(identity *dto.Identity) bool {
			return identity.ExternalID == "usr_role" && identity.Email == "role@example.com"
		})).Return(&models.User{ID: uuid.New(), Role: models.RoleAdmin}, nil).Once()
		router := setupAuthRouter(bridge, models.RoleAdmin)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		bridge.AssertExpectations(t)
	})

	t.Run("Candidate Denied On Admin Route", func(t *testing.T) {
		bridge := new(MockIdentityService)
		bridge.On("EnsureUser", mock.Anything, mock.Anything).Return(&models.User{
			ID:   uuid.New(),
			Role: models.RoleCandidate,
		}, nil).Once()
		router := setupAuthRouter(bridge, models.RoleAdmin)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.JSONEq(t, `{"error":"forbidden"}`, recorder.Body.String())
	})

	t.Run("Lookup Error Fails Closed", func(t *testing.T) {
		bridge := new(MockIdentityService)
		bridge.On("EnsureUser", mock.Anything, mock.Anything).Return(nil, errors.New("database down")).Once()
		router := setupAuthRouter(bridge, models.RoleAdmin)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.JSONEq(t, `{"error":"forbidden"}`, recorder.Body.String())
	})
}
