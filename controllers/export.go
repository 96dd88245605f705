// controllers/export.go - CSV downloads, consumers of the role-scoped listing
package controllers

import (
	"net/http"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/utils"

	"github.com/gin-gonic/gin"
)

// ExportSubmissions streams the caller's filtered submission list as CSV.
// Students get their own rows without the Submitted By column; admins get
// the full report.
func ExportSubmissions(c *gin.Context) {
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

	filename := "my_project_submissions.csv"
	includeSubmitter := user.IsAdmin()
	if includeSubmitter {
		filename = "project_submissions.csv"
	}

	csvData, err := utils.SubmissionsCSV(list, includeSubmitter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}

// ExportUsers streams the user list as CSV for admins.
func ExportUsers(c *gin.Context) {
	accounts := services.NewAccountService(config.DB)
	users, err := accounts.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	csvData, err := utils.UsersCSV(users)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=users.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}
