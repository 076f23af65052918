package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsertTimeBlock is a validated time block ready to be stored.
type InsertTimeBlock struct {
	block models.TimeBlock
}

// NewInsertTimeBlock validates a create payload. An end time before the start
// time is accepted; the calendar renders such blocks as empty.
func NewInsertTimeBlock(userID string, req dto.CreateTimeBlockRequest) (InsertTimeBlock, error) {
	v := &ValidationError{}
	if userID == "" {
		v.add("userId", "is required")
	}
	v.requireText("title", req.Title)
	v.requireTime("startTime", req.StartTime)
	v.requireTime("endTime", req.EndTime)
	v.hexColor("color", req.Color)
	taskID := parseTaskID(v, req.TaskID)
	if err := v.err(); err != nil {
		return InsertTimeBlock{}, err
	}

	block := models.TimeBlock{
		UserID:      userID,
		TaskID:      taskID,
		Title:       strings.TrimSpace(*req.Title),
		Description: req.Description,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Color:       models.DefaultBlockColor,
	}
	if req.Color != nil {
		block.Color = *req.Color
	}
	if req.IsAllDay != nil {
		block.IsAllDay = *req.IsAllDay
	}
	return InsertTimeBlock{block: block}, nil
}

// TimeBlockPatch is a validated partial update.
type TimeBlockPatch struct {
	columns map[string]interface{}
	taskID  *uuid.UUID
}

func NewTimeBlockPatch(req dto.UpdateTimeBlockRequest) (TimeBlockPatch, error) {
	v := &ValidationError{}
	v.optionalText("title", req.Title)
	v.hexColor("color", req.Color)
	if req.StartTime != nil && req.StartTime.IsZero() {
		v.add("startTime", "must be a valid timestamp")
	}
	if req.EndTime != nil && req.EndTime.IsZero() {
		v.add("endTime", "must be a valid timestamp")
	}
	taskID := parseTaskID(v, req.TaskID.Value)
	if err := v.err(); err != nil {
		return TimeBlockPatch{}, err
	}

	cols := make(map[string]interface{})
	if req.Title != nil {
		cols["title"] = strings.TrimSpace(*req.Title)
	}
	setNullable(cols, "description", req.Description)
	if req.StartTime != nil {
		cols["start_time"] = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		cols["end_time"] = req.EndTime.UTC()
	}
	if req.Color != nil {
		cols["color"] = *req.Color
	}
	if req.IsAllDay != nil {
		cols["is_all_day"] = *req.IsAllDay
	}
	switch {
	case taskID != nil:
		cols["task_id"] = *taskID
	case req.TaskID.Set:
		// null or "" unlinks the block.
		cols["task_id"] = nil
	}
	return TimeBlockPatch{columns: cols, taskID: taskID}, nil
}

func parseTaskID(v *ValidationError, raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		v.add("taskId", "must be a valid id")
		return nil
	}
	return &id
}

type TimeBlockService struct {
	db    *gorm.DB
	tasks *TaskService
	now   func() time.Time
}

func NewTimeBlockService(db *gorm.DB, tasks *TaskService) *TimeBlockService {
	return &TimeBlockService{db: db, tasks: tasks, now: utcNow}
}

// List returns the user's blocks ordered by start time, the order the
// calendar relies on.
func (s *TimeBlockService) List(ctx context.Context, userID string) ([]models.TimeBlock, error) {
	blocks := []models.TimeBlock{}
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list time blocks: %w", err)
	}
	return blocks, nil
}

// ListBetween returns blocks starting in [from, to), ordered by start time.
func (s *TimeBlockService) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.TimeBlock, error) {
	blocks := []models.TimeBlock{}
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Where("start_time >= ? AND start_time < ?", from.UTC(), to.UTC()).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list time blocks: %w", err)
	}
	return blocks, nil
}

func (s *TimeBlockService) Get(ctx context.Context, id uuid.UUID, userID string) (*models.TimeBlock, error) {
	var block models.TimeBlock
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).First(&block, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch time block: %w", err)
	}
	return &block, nil
}

func (s *TimeBlockService) Create(ctx context.Context, in InsertTimeBlock) (*models.TimeBlock, error) {
	if in.block.UserID == "" {
		return nil, fieldInvalid("userId", "is required")
	}
	if err := s.checkTask(ctx, in.block.TaskID, in.block.UserID); err != nil {
		return nil, err
	}

	block := in.block
	now := s.now()
	block.CreatedAt = now
	block.UpdatedAt = now

	if err := s.db.WithContext(ctx).Omit("Task").Create(&block).Error; err != nil {
		return nil, fmt.Errorf("failed to create time block: %w", err)
	}
	return &block, nil
}

func (s *TimeBlockService) Update(ctx context.Context, id uuid.UUID, userID string, patch TimeBlockPatch) (*models.TimeBlock, error) {
	if err := s.checkTask(ctx, patch.taskID, userID); err != nil {
		return nil, err
	}
	if err := applyPatch(s.db.WithContext(ctx), &models.TimeBlock{}, id, userID, patch.columns, s.now()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id, userID)
}

func (s *TimeBlockService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Where("id = ?", id).
		Delete(&models.TimeBlock{}).Error; err != nil {
		return fmt.Errorf("failed to delete time block: %w", err)
	}
	return nil
}

// checkTask rejects links to tasks the user does not own, so another user's
// task deletion can never cascade into this user's calendar.
func (s *TimeBlockService) checkTask(ctx context.Context, taskID *uuid.UUID, userID string) error {
	if taskID == nil {
		return nil
	}
	ok, err := s.tasks.Exists(ctx, *taskID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fieldInvalid("taskId", "does not reference one of your tasks")
	}
	return nil
}
