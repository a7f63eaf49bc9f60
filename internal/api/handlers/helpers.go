package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "uuid4":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
	}
	return errorsMap
}

// respondServiceError maps service layer errors to HTTP responses. Forbidden
// bodies stay neutral so a denial never reveals whether the resource exists.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrInvitationExpired):
		c.JSON(http.StatusConflict, gin.H{"error": "Invitation expired or already used"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrResumeRequired), errors.Is(err, services.ErrInvalidFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStorage):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		Type:             job.Type,
		Salary:           job.Salary,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Status:           string(job.Status),
		PostedBy:         job.PostedBy,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt,
	}
}

// MapApplicationWithJobToResponse converts a joined application row for the candidate dashboard
func MapApplicationWithJobToResponse(app *models.ApplicationWithJob) dto.ApplicationWithJobResponse {
	return dto.ApplicationWithJobResponse{
		ApplicationResponse: MapApplicationModelToResponse(&app.Application),
		JobTitle:            app.JobTitle,
		JobCompany:          app.JobCompany,
	}
}

// MapInvitationModelToResponse converts a models.AdminInvitation to a dto.InvitationResponse
func MapInvitationModelToResponse(inv *models.AdminInvitation) dto.InvitationResponse {
	return dto.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Token:     inv.Token,
		Status:    string(inv.Status),
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
	}
}

// MapInvitationWithCreatorToResponse adds the issuing admin's display fields
func MapInvitationWithCreatorToResponse(inv *models.AdminInvitationWithCreator) dto.InvitationResponse {
	resp := MapInvitationModelToResponse(&inv.AdminInvitation)
	resp.CreatorName = inv.CreatorName
	resp.CreatorEmail = inv.CreatorEmail
	return resp
}

// MapProfileModelToResponse converts a models.CandidateProfile to a dto.ProfileResponse
func MapProfileModelToResponse(profile *models.CandidateProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Name:           profile.Name,
		Age:            profile.Age,
		Occupation:     profile.Occupation,
		ExperienceBand: profile.ExperienceBand,
		Location:       profile.Location,
		Bio:            profile.Bio,
		ResumeFileName: profile.ResumeFileName,
		ResumeFileURL:  profile.ResumeFileURL,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

// MapSavedJobModelToResponse converts a models.SavedJob to a dto.SavedJobResponse
func MapSavedJobModelToResponse(saved *models.SavedJob) dto.SavedJobResponse {
	return dto.SavedJobResponse{
		ID:        saved.ID,
		JobID:     saved.JobID,
		CreatedAt: saved.CreatedAt,
	}
}

// MapSavedJobWithJobToResponse converts a joined bookmark row for the candidate dashboard
func MapSavedJobWithJobToResponse(saved *models.SavedJobWithJob) dto.SavedJobResponse {
	resp := MapSavedJobModelToResponse(&saved.SavedJob)
	resp.JobTitle = saved.JobTitle
	resp.JobCompany = saved.JobCompany
	resp.JobStatus = saved.JobStatus
	return resp
}
