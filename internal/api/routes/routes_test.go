package routes_test

import (
	"net/http"
	"testing"

	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock handlers record calls; routing itself is what is under test here.

type MockJobHandler struct{ mock.Mock }

func (m *MockJobHandler) ListJobs(c *gin.Context)        { m.Called(c) }
func (m *MockJobHandler) GetJobByID(c *gin.Context)      { m.Called(c) }
func (m *MockJobHandler) CreateJob(c *gin.Context)       { m.Called(c) }
func (m *MockJobHandler) UpdateJob(c *gin.Context)       { m.Called(c) }
func (m *MockJobHandler) UpdateJobStatus(c *gin.Context) { m.Called(c) }

var _ handlers.JobHandlerInterface = (*MockJobHandler)(nil)

type MockApplicationHandler struct{ mock.Mock }

func (m *MockApplicationHandler) Apply(c *gin.Context)        { m.Called(c) }
func (m *MockApplicationHandler) ListByJob(c *gin.Context)    { m.Called(c) }
func (m *MockApplicationHandler) ListMine(c *gin.Context)     { m.Called(c) }
func (m *MockApplicationHandler) UpdateStatus(c *gin.Context) { m.Called(c) }

var _ handlers.ApplicationHandlerInterface = (*MockApplicationHandler)(nil)

type MockInvitationHandler struct{ mock.Mock }

func (m *MockInvitationHandler) IssueInvitation(c *gin.Context)  { m.Called(c) }
func (m *MockInvitationHandler) RedeemInvitation(c *gin.Context) { m.Called(c) }
func (m *MockInvitationHandler) RevokeInvitation(c *gin.Context) { m.Called(c) }
func (m *MockInvitationHandler) ListInvitations(c *gin.Context)  { m.Called(c) }

var _ handlers.InvitationHandlerInterface = (*MockInvitationHandler)(nil)

func noopMiddleware(c *gin.Context) { c.Next() }

func registeredRouteMap(router *gin.Engine, t *testing.T) map[string]bool {
	registered := make(map[string]bool)
	for _, routeInfo := range router.Routes() {
		registered[routeInfo.Method+" "+routeInfo.Path] = true
		t.Logf("Registered: %s %s", routeInfo.Method, routeInfo.Path)
	}
	return registered
}

func TestRegisterJobRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	mockJobHandler := new(MockJobHandler)
	mockApplicationHandler := new(MockApplicationHandler)
	router := gin.New()
	testGroup := router.Group("/api/v1")

	// Act
	routes.RegisterJobRoutes(testGroup, mockJobHandler, mockApplicationHandler, noopMiddleware, noopMiddleware, noopMiddleware)

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/jobs/:id"},
		{http.MethodPost, "/api/v1/jobs"},
		{http.MethodPatch, "/api/v1/jobs/:id"},
		{http.MethodPatch, "/api/v1/jobs/:id/status"},
		{http.MethodPost, "/api/v1/jobs/:id/applications"},
		{http.MethodGet, "/api/v1/jobs/:id/applications"},
	}

	registered := registeredRouteMap(router, t)
	assert.Len(t, router.Routes(), len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		assert.True(t, registered[expected.Method+" "+expected.Path], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestRegisterApplicationRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockApplicationHandler := new(MockApplicationHandler)
	router := gin.New()
	testGroup := router.Group("/api/v1")

	routes.RegisterApplicationRoutes(testGroup, mockApplicationHandler, noopMiddleware, noopMiddleware, noopMiddleware)

	registered := registeredRouteMap(router, t)
	assert.True(t, registered["GET /api/v1/applications"])
	assert.True(t, registered["PATCH /api/v1/applications/:id/status"])
}

func TestRegisterInvitationRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockInvitationHandler := new(MockInvitationHandler)
	router := gin.New()
	testGroup := router.Group("/api/v1")

	routes.RegisterInvitationRoutes(testGroup, mockInvitationHandler, noopMiddleware, noopMiddleware)

	registered := registeredRouteMap(router, t)
	assert.True(t, registered["GET /api/v1/invitations"])
	assert.True(t, registered["POST /api/v1/invitations"])
	assert.True(t, registered["DELETE /api/v1/invitations/:id"])
	assert.True(t, registered["POST /api/v1/invitations/redeem"])
}
