package models

import "time"

// Submission is a student project proposal under administrative review.
// Records are never deleted; dateSubmitted is set once at creation.
type Submission struct {
	SubmissionID   string    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Title          string    `gorm:"column:title" json:"title"`
	Organization   string    `gorm:"column:organization" json:"organization"`
	SubmitterID    int       `gorm:"column:submitter_id;index" json:"submitter_id"`
	SubmittedBy    string    `gorm:"column:submitted_by" json:"submitted_by"`
	DateSubmitted  time.Time `gorm:"column:date_submitted" json:"date_submitted"`
	Status         string    `gorm:"column:status" json:"status"`
	Objectives     string    `gorm:"column:objectives" json:"objectives"`
	Budget         float64   `gorm:"column:budget" json:"budget"`
	Venue          string    `gorm:"column:venue" json:"venue"`
	DateOfActivity string    `gorm:"column:date_of_activity" json:"date_of_activity"`
	Description    *string   `gorm:"column:description" json:"description,omitempty"`

	// Comments are append-only, ordered by insertion.
	Comments []Comment `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"comments"`
}

// Comment is an admin review note attached to exactly one submission.
// Immutable once created.
type Comment struct {
	CommentID    int       `gorm:"primaryKey;autoIncrement;column:comment_id" json:"comment_id"`
	SubmissionID string    `gorm:"column:submission_id;index" json:"submission_id"`
	AuthorID     int       `gorm:"column:author_id" json:"author_id"`
	Author       string    `gorm:"column:author" json:"author"`
	Text         string    `gorm:"column:text" json:"text"`
	Timestamp    time.Time `gorm:"column:commented_at" json:"timestamp"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

func (Comment) TableName() string {
	return "comments"
}
