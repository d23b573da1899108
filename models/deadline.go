package models

import "time"

type Deadline struct {
	DeadlineID  int       `gorm:"primaryKey;column:deadline_id" json:"deadline_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Deadline    time.Time `gorm:"column:deadline" json:"deadline"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedBy   int       `gorm:"column:created_by" json:"created_by"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// TableName overrides
func (Deadline) TableName() string {
	return "deadlines"
}

// IsPassed reports whether the cutoff instant is already behind us.
func (d *Deadline) IsPassed() bool {
	return time.Now().After(d.Deadline)
}
