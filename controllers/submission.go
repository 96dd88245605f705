// controllers/submission.go - student-facing submission endpoints
package controllers

import (
	"net/http"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"

	"github.com/gin-gonic/gin"
)

// CreateSubmission stores a new proposal with status Pending.
func CreateSubmission(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submissions := services.NewSubmissionService(config.DB)
	submission, err := submissions.Create(user, &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"submission": submission,
		"message":    "Proposal submitted",
	})
}

// GetSubmissions lists submissions visible to the caller, newest first.
// Students only see their own; admins see all, with optional
// ?organization= and ?status= filters.
func GetSubmissions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filters := services.SubmissionFilters{
		Organization: c.Query("organization"),
		Status:       c.Query("status"),
	}

	submissions := services.NewSubmissionService(config.DB)
	list, err := submissions.List(user, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": list,
		"total":       len(list),
	})
}

// GetSubmission returns one submission with its comments in insertion order.
func GetSubmission(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	submissions := services.NewSubmissionService(config.DB)
	submission, err := submissions.Get(user, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
	})
}
