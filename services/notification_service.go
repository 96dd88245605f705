package services

import (
	"fmt"
	"log"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"

	"gorm.io/gorm"
)

// NotificationService emails submitters about review outcomes. Delivery is
// best-effort: a mail failure never fails the triggering operation.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyStatusChanged mails the submitter about the new status. Skipped when
// SMTP is unconfigured or the submission predates submitter accounts.
func (n *NotificationService) NotifyStatusChanged(submission *models.Submission, comment string) {
	if !config.MailConfigured() {
		return
	}
	if submission.SubmitterID == 0 {
		return
	}

	var submitter models.User
	if err := n.db.First(&submitter, "user_id = ?", submission.SubmitterID).Error; err != nil {
		log.Printf("[NotifyStatusChanged] load submitter %d: %v", submission.SubmitterID, err)
		return
	}

	subject := fmt.Sprintf("Proposal %q is now %s", submission.Title, submission.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your proposal <strong>%s</strong> has been marked <strong>%s</strong>.</p>",
		submitter.Name, submission.Title, submission.Status,
	)
	if comment != "" {
		body += fmt.Sprintf("<p>Reviewer note: %s</p>", comment)
	}

	if err := config.SendMail([]string{submitter.Email}, subject, body); err != nil {
		log.Printf("[NotifyStatusChanged] send mail to %s: %v", submitter.Email, err)
	}
}
