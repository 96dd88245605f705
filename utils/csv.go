// utils/csv.go - CSV builders for submission and user exports
package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
)

// SubmissionsCSV renders submissions as CSV. includeSubmitter controls whether
// the Submitted By column is present; the student export omits it.
func SubmissionsCSV(submissions []models.Submission, includeSubmitter bool) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Title", "Organization"}
	if includeSubmitter {
		header = append(header, "Submitted By")
	}
	header = append(header, "Status", "Budget", "Venue", "Date of Activity", "Date Submitted")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, s := range submissions {
		row := []string{s.Title, s.Organization}
		if includeSubmitter {
			row = append(row, s.SubmittedBy)
		}
		row = append(row,
			s.Status,
			strconv.FormatFloat(s.Budget, 'f', -1, 64),
			s.Venue,
			s.DateOfActivity,
			s.DateSubmitted.Format("2006-01-02"),
		)
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UsersCSV renders the user list for the admin export.
func UsersCSV(users []models.User) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Email", "Role", "Organization", "Student ID"}); err != nil {
		return "", err
	}

	for _, u := range users {
		org := ""
		if u.Organization != nil {
			org = *u.Organization
		}
		studentID := ""
		if u.StudentID != nil {
			studentID = *u.StudentID
		}
		if err := w.Write([]string{u.Name, u.Email, u.Role, org, studentID}); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
