package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deadline-management-api/config"
	"deadline-management-api/models"

	"gorm.io/gorm"
)

type DeadlineService struct {
	db *gorm.DB
}

func NewDeadlineService(db *gorm.DB) *DeadlineService {
	if db == nil {
		db = config.DB
	}
	return &DeadlineService{db: db}
}

// DeadlineUpdate enumerates the fields an admin may change. Nil fields are
// left untouched.
type DeadlineUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (s *DeadlineService) Create(ctx context.Context, title, description string, cutoff time.Time, callerID int) (*models.Deadline, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if cutoff.IsZero() {
		return nil, fmt.Errorf("deadline date is required: %w", ErrValidation)
	}
	if !cutoff.After(time.Now()) {
		return nil, fmt.Errorf("deadline must be in the future: %w", ErrValidation)
	}

	now := time.Now()
	deadline := &models.Deadline{
		Title:       title,
		Description: description,
		Deadline:    cutoff,
		IsActive:    true,
		CreatedBy:   callerID,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := s.db.WithContext(ctx).Create(deadline).Error; err != nil {
		return nil, fmt.Errorf("create deadline: %w", err)
	}
	return deadline, nil
}

func (s *DeadlineService) ListAll(ctx context.Context) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := s.db.WithContext(ctx).
		Preload("Creator").
		Order("create_at DESC").
		Find(&deadlines).Error
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	return deadlines, nil
}

// ListActive returns deadlines still open for submissions, soonest first.
func (s *DeadlineService) ListActive(ctx context.Context) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := s.db.WithContext(ctx).
		Preload("Creator").
		Where("is_active = ? AND deadline > ?", true, time.Now()).
		Order("deadline ASC").
		Find(&deadlines).Error
	if err != nil {
		return nil, fmt.Errorf("list active deadlines: %w", err)
	}
	return deadlines, nil
}

func (s *DeadlineService) GetByID(ctx context.Context, id int) (*models.Deadline, error) {
	var deadline models.Deadline
	err := s.db.WithContext(ctx).
		Preload("Creator").
		Where("deadline_id = ?", id).
		First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deadline %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get deadline: %w", err)
	}
	return &deadline, nil
}

func (s *DeadlineService) Update(ctx context.Context, id int, patch DeadlineUpdate) (*models.Deadline, error) {
	var deadline models.Deadline
	err := s.db.WithContext(ctx).Where("deadline_id = ?", id).First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deadline %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get deadline: %w", err)
	}

	if patch.Deadline != nil && !patch.Deadline.After(time.Now()) {
		return nil, fmt.Errorf("deadline must be in the future: %w", ErrValidation)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", ErrValidation)
		}
		deadline.Title = *patch.Title
	}
	if patch.Description != nil {
		deadline.Description = *patch.Description
	}
	if patch.Deadline != nil {
		deadline.Deadline = *patch.Deadline
	}
	if patch.IsActive != nil {
		deadline.IsActive = *patch.IsActive
	}
	deadline.UpdateAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&deadline).Error; err != nil {
		return nil, fmt.Errorf("update deadline: %w", err)
	}
	return &deadline, nil
}

// Delete removes the deadline. Existing submissions keep their reference and
// survive as historical records.
func (s *DeadlineService) Delete(ctx context.Context, id int) error {
	var deadline models.Deadline
	err := s.db.WithContext(ctx).Where("deadline_id = ?", id).First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("deadline %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("get deadline: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&deadline).Error; err != nil {
		return fmt.Errorf("delete deadline: %w", err)
	}
	return nil
}

func (s *DeadlineService) ToggleActive(ctx context.Context, id int) (*models.Deadline, error) {
	var deadline models.Deadline
	err := s.db.WithContext(ctx).Where("deadline_id = ?", id).First(&deadline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deadline %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get deadline: %w", err)
	}

	deadline.IsActive = !deadline.IsActive
	deadline.UpdateAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&deadline).Error; err != nil {
		return nil, fmt.Errorf("toggle deadline: %w", err)
	}
	return &deadline, nil
}
