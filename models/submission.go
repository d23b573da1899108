package models

import "time"

// Submission status values
const (
	StatusOnTime = "on-time"
	StatusLate   = "late"
)

type Submission struct {
	SubmissionID int       `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Title        string    `gorm:"column:title" json:"title"`
	Content      string    `gorm:"column:content" json:"content"`
	DeadlineID   int       `gorm:"column:deadline_id;uniqueIndex:uniq_deadline_user" json:"deadline_id"`
	SubmittedBy  int       `gorm:"column:submitted_by;uniqueIndex:uniq_deadline_user" json:"submitted_by"`
	SubmittedAt  time.Time `gorm:"column:submitted_at" json:"submitted_at"`
	Status       string    `gorm:"column:status;default:on-time" json:"status"`

	// Relations
	Deadline  *Deadline `gorm:"foreignKey:DeadlineID" json:"deadline,omitempty"`
	Submitter User      `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}
