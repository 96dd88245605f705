package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService implements the proposal lifecycle: creation, status
// transitions, comment appends and role-scoped queries.
type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// SubmissionInput carries the proposal fields supplied by a student.
// Budget is a pointer so a missing value can be told apart from zero.
type SubmissionInput struct {
	Title          string   `json:"title"`
	Organization   string   `json:"organization"`
	Objectives     string   `json:"objectives"`
	Description    string   `json:"description"`
	Budget         *float64 `json:"budget"`
	Venue          string   `json:"venue"`
	DateOfActivity string   `json:"date_of_activity"`
}

// SubmissionFilters narrows listings. Empty fields match everything.
type SubmissionFilters struct {
	Organization string
	Status       string
}

func validateSubmissionInput(input *SubmissionInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"organization", input.Organization},
		{"objectives", input.Objectives},
		{"venue", input.Venue},
		{"date_of_activity", input.DateOfActivity},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return validationErrorf("%s is required", field.name)
		}
	}

	if input.Budget == nil {
		return validationErrorf("budget is required")
	}
	if math.IsNaN(*input.Budget) || math.IsInf(*input.Budget, 0) {
		return validationErrorf("budget must be a valid number")
	}
	if *input.Budget < 0 {
		return validationErrorf("budget must not be negative")
	}

	return nil
}

// Create validates the input and stores a new submission with status Pending.
// The submitter link is kept both as a stable id and as the denormalized name
// used in listings and exports.
func (s *SubmissionService) Create(author *models.User, input *SubmissionInput) (*models.Submission, error) {
	if !author.IsStudent() {
		return nil, &AuthorizationError{Message: "only students can submit proposals"}
	}

	if err := validateSubmissionInput(input); err != nil {
		return nil, err
	}

	submission := models.Submission{
		SubmissionID:   uuid.NewString(),
		Title:          strings.TrimSpace(input.Title),
		Organization:   strings.TrimSpace(input.Organization),
		SubmitterID:    author.UserID,
		SubmittedBy:    author.Name,
		DateSubmitted:  time.Now(),
		Status:         utils.StatusPending,
		Objectives:     strings.TrimSpace(input.Objectives),
		Budget:         *input.Budget,
		Venue:          strings.TrimSpace(input.Venue),
		DateOfActivity: strings.TrimSpace(input.DateOfActivity),
		Comments:       []models.Comment{},
	}

	if description := strings.TrimSpace(input.Description); description != "" {
		submission.Description = &description
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, storageError("create submission", err)
	}

	return &submission, nil
}

// TransitionStatus overwrites the submission status. Any status is reachable
// from any status; there is no transition graph. A non-empty comment is
// appended in the same operation.
func (s *SubmissionService) TransitionStatus(actor *models.User, submissionID, status, comment string) (*models.Submission, error) {
	if !actor.IsAdmin() {
		return nil, &AuthorizationError{Message: "only admins can update submission status"}
	}

	canonical, ok := utils.CanonicalStatus(status)
	if !ok {
		return nil, validationErrorf("invalid status %q", status)
	}

	var submission models.Submission
	if err := s.db.First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "submission not found"}
		}
		return nil, storageError("load submission", err)
	}

	if err := s.db.Model(&submission).Update("status", canonical).Error; err != nil {
		return nil, storageError("update submission status", err)
	}
	submission.Status = canonical

	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		if _, err := s.appendComment(actor, &submission, trimmed); err != nil {
			return nil, err
		}
	}

	if err := s.loadComments(&submission); err != nil {
		return nil, err
	}

	return &submission, nil
}

// AddComment appends a review note without touching the status.
func (s *SubmissionService) AddComment(actor *models.User, submissionID, text string) (*models.Comment, error) {
	if !actor.IsAdmin() {
		return nil, &AuthorizationError{Message: "only admins can comment on submissions"}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, validationErrorf("comment text is required")
	}

	var submission models.Submission
	if err := s.db.First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "submission not found"}
		}
		return nil, storageError("load submission", err)
	}

	return s.appendComment(actor, &submission, trimmed)
}

func (s *SubmissionService) appendComment(actor *models.User, submission *models.Submission, text string) (*models.Comment, error) {
	comment := models.Comment{
		SubmissionID: submission.SubmissionID,
		AuthorID:     actor.UserID,
		Author:       actor.Name,
		Text:         text,
		Timestamp:    time.Now(),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, storageError("append comment", err)
	}
	return &comment, nil
}

func (s *SubmissionService) loadComments(submission *models.Submission) error {
	var comments []models.Comment
	if err := s.db.Where("submission_id = ?", submission.SubmissionID).
		Order("comment_id ASC").
		Find(&comments).Error; err != nil {
		return storageError("load comments", err)
	}
	submission.Comments = comments
	return nil
}

// List returns the submissions visible to the actor, most recent first.
// Students only ever see their own; admins see everything matching the
// filters. An empty result is a valid empty slice, not an error.
func (s *SubmissionService) List(actor *models.User, filters SubmissionFilters) ([]models.Submission, error) {
	query := s.db.Order("date_submitted DESC")

	if actor.IsStudent() {
		query = query.Where("submitter_id = ?", actor.UserID)
	}

	if org := strings.TrimSpace(filters.Organization); org != "" {
		query = query.Where("organization = ?", org)
	}
	if status := strings.TrimSpace(filters.Status); status != "" {
		// Unknown status values simply match nothing.
		if canonical, ok := utils.CanonicalStatus(status); ok {
			status = canonical
		}
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, storageError("list submissions", err)
	}

	return submissions, nil
}

// Get loads a single submission with its comments in insertion order.
// Students may only fetch their own submissions.
func (s *SubmissionService) Get(actor *models.User, submissionID string) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comment_id ASC")
	}).First(&submission, "submission_id = ?", submissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "submission not found"}
		}
		return nil, storageError("load submission", err)
	}

	if actor.IsStudent() && submission.SubmitterID != actor.UserID {
		return nil, &AuthorizationError{Message: "submission belongs to another student"}
	}

	return &submission, nil
}

// SubmissionStats summarizes a submission set for the dashboards.
type SubmissionStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Approved    int `json:"approved"`
	Revisions   int `json:"revisions"`
	Disapproved int `json:"disapproved"`
}

// ComputeStats derives counts for a given submission set. Pure function.
func ComputeStats(submissions []models.Submission) SubmissionStats {
	stats := SubmissionStats{Total: len(submissions)}
	for _, submission := range submissions {
		switch submission.Status {
		case utils.StatusPending:
			stats.Pending++
		case utils.StatusApproved:
			stats.Approved++
		case utils.StatusRevisions:
			stats.Revisions++
		case utils.StatusDisapproved:
			stats.Disapproved++
		}
	}
	return stats
}
