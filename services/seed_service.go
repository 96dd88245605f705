package services

import (
	"log"
	"time"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/utils"

	"gorm.io/gorm"
)

// SeedDemoData loads the built-in demo dataset when the database is empty.
// With force=true the tables are cleared and reseeded. Demo passwords are
// bcrypt-hashed on insert; nothing is stored in plaintext.
func SeedDemoData(db *gorm.DB, force bool) error {
	if force {
		for _, table := range []string{"comments", "submissions", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				return storageError("clear "+table, err)
			}
		}
	} else {
		var count int64
		if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
			return storageError("count users", err)
		}
		if count > 0 {
			return nil
		}
	}

	studentHash, err := utils.HashPassword("password123")
	if err != nil {
		return storageError("hash demo password", err)
	}
	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return storageError("hash demo password", err)
	}

	now := time.Now()
	studentID := "2023-12345"
	organization := "Rotaract Club"

	student := models.User{
		Name:         "Jane Smith",
		Email:        "student@example.com",
		PasswordHash: studentHash,
		Role:         models.RoleStudent,
		Avatar:       "JS",
		StudentID:    &studentID,
		Organization: &organization,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	admin := models.User{
		Name:         "Dr. Reyes",
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		Role:         models.RoleAdmin,
		Avatar:       "DR",
		CreateAt:     &now,
		UpdateAt:     &now,
	}

	if err := db.Create(&student).Error; err != nil {
		return storageError("seed student user", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return storageError("seed admin user", err)
	}

	charityRunDescription := "A 5K fun run open to all students"
	seminarDescription := "One-day seminar with guest speakers"

	charityRun := models.Submission{
		SubmissionID:   "60d21b4667d0d8992e610c85",
		Title:          "Annual Charity Run 2025",
		Organization:   "Rotaract Club",
		SubmitterID:    student.UserID,
		SubmittedBy:    student.Name,
		DateSubmitted:  time.Date(2025, 11, 13, 8, 0, 0, 0, time.UTC),
		Status:         utils.StatusPending,
		Objectives:     "Raise funds for local orphanage",
		Budget:         15000,
		Venue:          "University Oval",
		DateOfActivity: "2025-12-10",
		Description:    &charityRunDescription,
	}

	// Historical record whose submitter never had an account.
	seminar := models.Submission{
		SubmissionID:   "60d21b4667d0d8992e610c86",
		Title:          "Leadership Seminar",
		Organization:   "Student Council",
		SubmitterID:    0,
		SubmittedBy:    "John Doe",
		DateSubmitted:  time.Date(2025, 11, 10, 10, 30, 0, 0, time.UTC),
		Status:         utils.StatusApproved,
		Objectives:     "Develop leadership skills among student officers",
		Budget:         8000,
		Venue:          "University Auditorium",
		DateOfActivity: "2025-12-05",
		Description:    &seminarDescription,
	}

	if err := db.Create(&charityRun).Error; err != nil {
		return storageError("seed submission", err)
	}
	if err := db.Create(&seminar).Error; err != nil {
		return storageError("seed submission", err)
	}

	seminarComment := models.Comment{
		SubmissionID: seminar.SubmissionID,
		AuthorID:     admin.UserID,
		Author:       admin.Name,
		Text:         "Great initiative! Approved with minor budget adjustments.",
		Timestamp:    time.Date(2025, 11, 12, 14, 20, 0, 0, time.UTC),
	}
	if err := db.Create(&seminarComment).Error; err != nil {
		return storageError("seed comment", err)
	}

	log.Println("Demo dataset seeded")
	return nil
}
