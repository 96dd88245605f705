package controllers

import (
	"net/http"
	"time"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns submission counts for the caller's scope:
// students get their own numbers, admins get the whole collection.
func GetDashboardStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	submissions := services.NewSubmissionService(config.DB)
	list, err := submissions.List(user, services.SubmissionFilters{})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	stats := services.ComputeStats(list)

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"current_date": time.Now().Format("2006-01-02"),
	})
}
