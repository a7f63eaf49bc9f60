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

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits the authenticated candidate's application to an active job. One application per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id          path      string                true "Job ID" Format(uuid)
// @Param        application body      dto.ApplyToJobRequest true "Application details"
// @Success      201 {object}  dto.ApplicationResponse "Application submitted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Already applied or job closed"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	candidate, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var req dto.ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.CandidateID = candidate.ID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error applying to job %s: %v", jobID, err)
		respondServiceError(c, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, MapApplicationModelToResponse(application))
}

// ListByJob godoc
// @Summary      List a job's applications
// @Description  Retrieves every application submitted to a job, for review.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationResponse "Applications for the job"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	req := dto.ListApplicationsByJobRequest{JobID: jobID}
	applications, err := h.service.ListByJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing applications for job %s: %v", jobID, err)
		respondServiceError(c, err, "Failed to retrieve applications")
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		resp = append(resp, MapApplicationModelToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine godoc
// @Summary      List own applications
// @Description  Retrieves the authenticated candidate's applications with job display fields.
// @Tags         applications
// @Produce      json
// @Success      200 {array}   dto.ApplicationWithJobResponse "Candidate's applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	candidate, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ListApplicationsByCandidateRequest{CandidateID: candidate.ID}
	applications, err := h.service.ListByCandidate(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing applications for candidate %s: %v", candidate.ID, err)
		respondServiceError(c, err, "Failed to retrieve applications")
		return
	}

	resp := make([]dto.ApplicationWithJobResponse, 0, len(applications))
	for i := range applications {
		resp = append(resp, MapApplicationWithJobToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Review an application
// @Description  Moves an application through the review pipeline.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string                             true "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true "Review decision"
// @Success      200 {object}  dto.ApplicationResponse "Status updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.Review(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error updating application status %s: %v", id, err)
		respondServiceError(c, err, "Failed to update application status")
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}
