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

// SavedJobHandler holds dependencies for bookmark operations.
type SavedJobHandler struct {
	service   services.SavedJobService
	validator *validator.Validate
}

// NewSavedJobHandler creates a new SavedJobHandler.
func NewSavedJobHandler(service services.SavedJobService, validate *validator.Validate) *SavedJobHandler {
	return &SavedJobHandler{
		service:   service,
		validator: validate,
	}
}

// SaveJob godoc
// @Summary      Bookmark a job
// @Description  Saves a job to the authenticated candidate's list.
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        bookmark body      dto.SaveJobRequest true "Job to save"
// @Success      201 {object}  dto.SavedJobResponse "Job saved"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Already saved"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /saved-jobs [post]
// @Security     BearerAuth
func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	candidate, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.CandidateID = candidate.ID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error saving job %s for candidate %s: %v", req.JobID, candidate.ID, err)
		respondServiceError(c, err, "Failed to save job")
		return
	}
	c.JSON(http.StatusCreated, MapSavedJobModelToResponse(saved))
}

// ListSavedJobs godoc
// @Summary      List saved jobs
// @Description  Retrieves the authenticated candidate's bookmarks with job display fields.
// @Tags         saved-jobs
// @Produce      json
// @Success      200 {array}   dto.SavedJobResponse "Candidate's saved jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) ListSavedJobs(c *gin.Context) {
	candidate, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ListSavedJobsRequest{CandidateID: candidate.ID}
	saved, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing saved jobs for candidate %s: %v", candidate.ID, err)
		respondServiceError(c, err, "Failed to retrieve saved jobs")
		return
	}

	resp := make([]dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		resp = append(resp, MapSavedJobWithJobToResponse(&saved[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveSavedJob godoc
// @Summary      Remove a saved job
// @Description  Deletes a bookmark owned by the authenticated candidate.
// @Tags         saved-jobs
// @Produce      json
// @Param        id   path      string  true  "Saved job ID" Format(uuid)
// @Success      204 "Bookmark removed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Bookmark Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /saved-jobs/{id} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) RemoveSavedJob(c *gin.Context) {
	candidate, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid saved job ID"})
		return
	}

	req := dto.RemoveSavedJobRequest{ID: id, CandidateID: candidate.ID}
	if err := h.service.Remove(c.Request.Context(), &req); err != nil {
		log.Printf("Error removing saved job %s: %v", id, err)
		respondServiceError(c, err, "Failed to remove saved job")
		return
	}
	c.Status(http.StatusNoContent)
}
