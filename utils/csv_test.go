package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
)

func TestSubmissionsCSVAdminColumns(t *testing.T) {
	submissions := []models.Submission{
		{
			Title:          "Annual Charity Run 2025",
			Organization:   "Rotaract Club",
			SubmittedBy:    "Jane Smith",
			Status:         StatusPending,
			Budget:         15000,
			Venue:          "University Oval",
			DateOfActivity: "2025-12-10",
			DateSubmitted:  time.Date(2025, 11, 13, 8, 0, 0, 0, time.UTC),
		},
	}

	csvData, err := SubmissionsCSV(submissions, true)
	if err != nil {
		t.Fatalf("SubmissionsCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(csvData), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "Title,Organization,Submitted By,Status,Budget,Venue,Date of Activity,Date Submitted" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Jane Smith") || !strings.Contains(lines[1], "15000") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestSubmissionsCSVStudentOmitsSubmitter(t *testing.T) {
	csvData, err := SubmissionsCSV(nil, false)
	if err != nil {
		t.Fatalf("SubmissionsCSV returned error: %v", err)
	}

	header := strings.TrimSpace(csvData)
	if header != "Title,Organization,Status,Budget,Venue,Date of Activity,Date Submitted" {
		t.Fatalf("unexpected header: %q", header)
	}
}

func TestUsersCSV(t *testing.T) {
	studentID := "2023-12345"
	organization := "Rotaract Club"
	users := []models.User{
		{Name: "Jane Smith", Email: "student@example.com", Role: "student", StudentID: &studentID, Organization: &organization},
		{Name: "Dr. Reyes", Email: "admin@example.com", Role: "admin"},
	}

	csvData, err := UsersCSV(users)
	if err != nil {
		t.Fatalf("UsersCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(csvData), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name,Email,Role,Organization,Student ID" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Jane Smith,student@example.com,student,Rotaract Club,2023-12345") {
		t.Fatalf("unexpected student row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Dr. Reyes,admin@example.com,admin,,") {
		t.Fatalf("unexpected admin row: %q", lines[2])
	}
}
