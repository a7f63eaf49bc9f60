package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// ProfileHandler holds dependencies for candidate profile operations.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		validator: validate,
	}
}

// GetMyProfile godoc
// @Summary      Get own profile
// @Description  Retrieves the authenticated candidate's profile.
// @Tags         profile
// @Produce      json
// @Success      200 {object}  dto.ProfileResponse "Profile found"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Profile Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.GetProfileByUserRequest{UserID: user.ID}
	profile, err := h.service.Get(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}

// SaveMyProfile godoc
// @Summary      Create or update own profile
// @Description  Upserts the authenticated candidate's profile from a multipart form. The resume part is required on first save and optional afterwards; accepted types are pdf, doc and docx up to 5 MiB.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string true  "Display name"
// @Param        age    formData  int    true  "Age (16-100)"
// @Param        resume formData  file   false "Resume file"
// @Success      200 {object}  dto.ProfileResponse "Profile saved"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or file type"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      413 {object}  map[string]string "File Too Large"
// @Failure      502 {object}  map[string]string "Upload Failed"
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveMyProfile(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Error getting current user from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}
	req.UserID = user.ID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume upload: " + err.Error()})
		return
	}
	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Error opening uploaded resume: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read resume upload"})
			return
		}
		defer file.Close()

		req.Resume = &dto.ResumeUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     file,
		}
	}

	profile, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error saving profile for user %s: %v", user.ID, err)
		respondServiceError(c, err, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}
