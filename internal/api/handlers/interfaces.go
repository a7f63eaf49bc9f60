// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	UpdateJobStatus(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListByJob(c *gin.Context)
	ListMine(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	GetMyProfile(c *gin.Context)
	SaveMyProfile(c *gin.Context)
}

// SavedJobHandlerInterface defines the methods needed by the saved-job routes.
type SavedJobHandlerInterface interface {
	SaveJob(c *gin.Context)
	ListSavedJobs(c *gin.Context)
	RemoveSavedJob(c *gin.Context)
}

// InvitationHandlerInterface defines the methods needed by the invitation routes.
type InvitationHandlerInterface interface {
	IssueInvitation(c *gin.Context)
	RedeemInvitation(c *gin.Context)
	RevokeInvitation(c *gin.Context)
	ListInvitations(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetUsers(c *gin.Context)
	UpdateUserRole(c *gin.Context)
	DeleteUser(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ ProfileHandlerInterface = (*ProfileHandler)(nil)
var _ SavedJobHandlerInterface = (*SavedJobHandler)(nil)
var _ InvitationHandlerInterface = (*InvitationHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
