package handlers

import (
	"log"
	"net/http"

	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// UserHandler holds dependencies for admin user management.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// GetUsers godoc
// @Summary      List all users
// @Description  Retrieves every registered user, newest first.
// @Tags         users
// @Produce      json
// @Success      200 {array}   dto.UserResponse "Successfully retrieved list of users"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		respondServiceError(c, err, "Failed to retrieve users")
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, MapUserModelToUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Description  Explicitly sets a user's role to candidate or admin.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string                    true "User ID" Format(uuid)
// @Param        role body      dto.UpdateUserRoleRequest true "New role"
// @Success      200 {object}  dto.UserResponse "Role updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users/{id}/role [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error updating role for user %s: %v", id, err)
		respondServiceError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes a user from the local store. Board data referencing the user is removed with it.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID" Format(uuid)
// @Success      204 "User deleted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		respondServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
