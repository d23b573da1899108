package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"deadline-management-api/config"
	"deadline-management-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
	// grace allows late creation (status "late") for this long past the
	// cutoff. Zero means late attempts are rejected outright.
	grace time.Duration
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	if db == nil {
		db = config.DB
	}
	graceSeconds, _ := strconv.Atoi(os.Getenv("SUBMISSION_GRACE_PERIOD_SECONDS"))
	return &SubmissionService{
		db:    db,
		grace: time.Duration(graceSeconds) * time.Second,
	}
}

// SubmissionUpdate enumerates the fields the owner may change. Status and the
// deadline reference are immutable once created.
type SubmissionUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type SubmissionStats struct {
	Total  int64 `json:"total"`
	OnTime int64 `json:"onTime"`
	Late   int64 `json:"late"`
}

func (s *SubmissionService) Create(ctx context.Context, title, content string, deadlineID, callerID int) (*models.Submission, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required: %w", ErrValidation)
	}

	var deadline models.Deadline
	err := s.db.WithContext(ctx).Where("deadline_id = ?", deadlineID).First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deadline %d: %w", deadlineID, ErrNotFound)
		}
		return nil, fmt.Errorf("get deadline: %w", err)
	}

	if !deadline.IsActive {
		return nil, ErrInactive
	}

	now := time.Now()
	status := models.StatusOnTime
	if deadline.IsPassed() {
		if now.After(deadline.Deadline.Add(s.grace)) {
			return nil, NewDeadlinePassedError(deadline.Deadline, now)
		}
		status = models.StatusLate
	}

	// Pre-check for a clean error message. The unique index on
	// (deadline_id, submitted_by) still catches concurrent creates below.
	var count int64
	err = s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("deadline_id = ? AND submitted_by = ?", deadlineID, callerID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check existing submission: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("already submitted for deadline %d: %w", deadlineID, ErrConflict)
	}

	submission := &models.Submission{
		Title:       title,
		Content:     content,
		DeadlineID:  deadlineID,
		SubmittedBy: callerID,
		SubmittedAt: now,
		Status:      status,
	}

	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		if IsDuplicateKey(err) {
			return nil, fmt.Errorf("already submitted for deadline %d: %w", deadlineID, ErrConflict)
		}
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.sendReceipt(ctx, submission, &deadline)
	return submission, nil
}

// sendReceipt emails a confirmation to the submitter. Best effort: failures
// are logged and never surfaced to the caller.
func (s *SubmissionService) sendReceipt(ctx context.Context, submission *models.Submission, deadline *models.Deadline) {
	if !config.MailConfigured() {
		return
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", submission.SubmittedBy).First(&user).Error; err != nil {
		log.Printf("Warning: receipt mail skipped, submitter %d lookup failed: %v", submission.SubmittedBy, err)
		return
	}

	reference := uuid.NewString()
	body := fmt.Sprintf(
		"<p>Your submission <strong>%s</strong> for deadline <strong>%s</strong> was received at %s (%s).</p><p>Reference: %s</p>",
		submission.Title, deadline.Title,
		submission.SubmittedAt.Format(time.RFC3339), submission.Status, reference,
	)
	if err := config.SendMail([]string{user.Email}, "Submission received", body); err != nil {
		log.Printf("Warning: failed to send receipt mail to %s: %v", user.Email, err)
	}
}

func (s *SubmissionService) ListAll(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.WithContext(ctx).
		Preload("Deadline").
		Preload("Submitter").
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) ListByDeadline(ctx context.Context, deadlineID int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.WithContext(ctx).
		Preload("Submitter").
		Where("deadline_id = ?", deadlineID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions by deadline: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) ListMine(ctx context.Context, callerID int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.WithContext(ctx).
		Preload("Deadline").
		Where("submitted_by = ?", callerID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("list own submissions: %w", err)
	}
	return submissions, nil
}

// GetByID returns one submission. Owners see their own; admins see all.
func (s *SubmissionService) GetByID(ctx context.Context, id, callerID, callerRoleID int) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.WithContext(ctx).
		Preload("Deadline").
		Preload("Submitter").
		Where("submission_id = ?", id).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("submission %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}

	if callerRoleID != models.RoleAdmin && submission.SubmittedBy != callerID {
		return nil, fmt.Errorf("submission %d belongs to another user: %w", id, ErrForbidden)
	}
	return &submission, nil
}

func (s *SubmissionService) Update(ctx context.Context, id int, patch SubmissionUpdate, callerID int) (*models.Submission, error) {
	submission, err := s.getOwnedMutable(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", ErrValidation)
		}
		submission.Title = *patch.Title
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return nil, fmt.Errorf("content cannot be empty: %w", ErrValidation)
		}
		submission.Content = *patch.Content
	}

	if err := s.db.WithContext(ctx).Save(submission).Error; err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return submission, nil
}

func (s *SubmissionService) Delete(ctx context.Context, id, callerID int) error {
	submission, err := s.getOwnedMutable(ctx, id, callerID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(submission).Error; err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	return nil
}

// getOwnedMutable loads a submission and verifies the caller owns it and the
// referenced deadline's cutoff has not passed. A submission whose deadline was
// deleted is frozen: the cutoff can no longer be verified.
func (s *SubmissionService) getOwnedMutable(ctx context.Context, id, callerID int) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.WithContext(ctx).Where("submission_id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("submission %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}

	if submission.SubmittedBy != callerID {
		return nil, fmt.Errorf("submission %d belongs to another user: %w", id, ErrForbidden)
	}

	var deadline models.Deadline
	err = s.db.WithContext(ctx).Where("deadline_id = ?", submission.DeadlineID).First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deadline %d no longer exists, submission is read-only: %w", submission.DeadlineID, ErrForbidden)
		}
		return nil, fmt.Errorf("get deadline: %w", err)
	}

	if deadline.IsPassed() {
		return nil, NewDeadlinePassedError(deadline.Deadline, time.Now())
	}
	return &submission, nil
}

// Stats counts submissions for a deadline, split by status. Independent
// queries, matching the exposed contract total == onTime + late.
func (s *SubmissionService) Stats(ctx context.Context, deadlineID int) (*SubmissionStats, error) {
	stats := &SubmissionStats{}

	err := s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("deadline_id = ?", deadlineID).
		Count(&stats.Total).Error
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("deadline_id = ? AND status = ?", deadlineID, models.StatusOnTime).
		Count(&stats.OnTime).Error
	if err != nil {
		return nil, fmt.Errorf("count on-time submissions: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("deadline_id = ? AND status = ?", deadlineID, models.StatusLate).
		Count(&stats.Late).Error
	if err != nil {
		return nil, fmt.Errorf("count late submissions: %w", err)
	}

	return stats, nil
}
