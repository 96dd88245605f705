// controllers/admin_submission.go - admin review operations
package controllers

import (
	"net/http"
	"strings"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"

	"github.com/gin-gonic/gin"
)

type StatusUpdateRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateSubmissionStatus sets a submission to any of the four statuses and
// optionally appends a review comment in the same call.
func UpdateSubmissionStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submissions := services.NewSubmissionService(config.DB)
	submission, err := submissions.TransitionStatus(user, c.Param("id"), req.Status, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Best-effort notification; never blocks the review flow.
	notifications := services.NewNotificationService(config.DB)
	notifications.NotifyStatusChanged(submission, strings.TrimSpace(req.Comment))

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"message":    "Status updated to \"" + submission.Status + "\"",
	})
}

// AddSubmissionComment appends a review note without changing the status.
func AddSubmissionComment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submissions := services.NewSubmissionService(config.DB)
	comment, err := submissions.AddComment(user, c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"comment": comment,
		"message": "Comment added",
	})
}

// GetUsers returns every account for the admin user-management table.
func GetUsers(c *gin.Context) {
	accounts := services.NewAccountService(config.DB)
	users, err := accounts.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}
