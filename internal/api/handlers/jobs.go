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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs godoc
// @Summary      List job postings
// @Description  Public board listing. Filters by free-text query and status, sorted by creation time.
// @Tags         jobs
// @Produce      json
// @Param        q      query     string false "Matches title, company, location or type"
// @Param        sort   query     string false "asc or desc (default desc)"
// @Param        status query     string false "draft, active or closed (default active)"
// @Success      200 {array}   dto.JobResponse "Matching jobs"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		respondServiceError(c, err, "Failed to retrieve jobs")
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID godoc
// @Summary      Get a job posting
// @Description  Retrieves a single job posting by its ID. Public.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Job found"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob godoc
// @Summary      Post a new job
// @Description  Creates a job posting. The poster is taken from the authenticated admin.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Job details"
// @Success      201 {object}  dto.JobResponse "Job created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	admin, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.PostedBy = admin.ID

	job, err := h.service.PostJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		respondServiceError(c, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// UpdateJob godoc
// @Summary      Edit a job posting
// @Description  Updates the provided fields of an existing job posting.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path      string               true "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  dto.JobResponse "Job updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error updating job %s: %v", id, err)
		respondServiceError(c, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// UpdateJobStatus godoc
// @Summary      Change a job's status
// @Description  Transitions a job between draft, active and closed. Closed jobs stay listed for their applicants.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true "Job ID" Format(uuid)
// @Param        status body      dto.UpdateJobStatusRequest true "New status"
// @Success      200 {object}  dto.JobResponse "Status updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJobStatus(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error updating job status %s: %v", id, err)
		respondServiceError(c, err, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}
