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

const defaultEstimatedMinutes = 60

// InsertTask is a validated task ready to be stored. Obtain one from
// NewInsertTask.
type InsertTask struct {
	task models.Task
}

// NewInsertTask validates a create payload for the given owner.
func NewInsertTask(userID string, req dto.CreateTaskRequest) (InsertTask, error) {
	v := &ValidationError{}
	if userID == "" {
		v.add("userId", "is required")
	}
	v.requireText("title", req.Title)
	v.oneOf("status", req.Status, models.TaskStatuses)
	v.oneOf("priority", req.Priority, models.TaskPriorities)
	v.positive("estimatedMinutes", req.EstimatedMinutes)
	if err := v.err(); err != nil {
		return InsertTask{}, err
	}

	task := models.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(*req.Title),
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		Priority:    models.TaskPriorityMedium,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	minutes := defaultEstimatedMinutes
	if req.EstimatedMinutes != nil {
		minutes = *req.EstimatedMinutes
	}
	task.EstimatedMinutes = &minutes

	return InsertTask{task: task}, nil
}

// TaskPatch is a validated partial update. Obtain one from NewTaskPatch.
type TaskPatch struct {
	columns map[string]interface{}
}

// NewTaskPatch validates an update payload. Only provided fields are kept.
func NewTaskPatch(req dto.UpdateTaskRequest) (TaskPatch, error) {
	v := &ValidationError{}
	v.optionalText("title", req.Title)
	v.oneOf("status", req.Status, models.TaskStatuses)
	v.oneOf("priority", req.Priority, models.TaskPriorities)
	v.positive("estimatedMinutes", req.EstimatedMinutes.Value)
	if err := v.err(); err != nil {
		return TaskPatch{}, err
	}

	cols := make(map[string]interface{})
	if req.Title != nil {
		cols["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Status != nil {
		cols["status"] = *req.Status
	}
	if req.Priority != nil {
		cols["priority"] = *req.Priority
	}
	setNullable(cols, "description", req.Description)
	setNullable(cols, "estimated_minutes", req.EstimatedMinutes)
	setNullable(cols, "due_date", req.DueDate)
	return TaskPatch{columns: cols}, nil
}

type TaskService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db, now: utcNow}
}

// List returns the user's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID, userID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) Create(ctx context.Context, in InsertTask) (*models.Task, error) {
	if in.task.UserID == "" {
		return nil, fieldInvalid("userId", "is required")
	}

	task := in.task
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// Update applies the patch to a task the user owns. ErrNotFound is returned
// when no such task exists.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, userID string, patch TaskPatch) (*models.Task, error) {
	if err := applyPatch(s.db.WithContext(ctx), &models.Task{}, id, userID, patch.columns, s.now()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id, userID)
}

// Delete removes the task if the user owns it. Time blocks linked to the
// task go with it through the foreign key cascade.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Where("id = ?", id).
		Delete(&models.Task{}).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Exists reports whether the user owns a task with the given id.
func (s *TaskService) Exists(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Task{}).Scopes(owner.Scope(userID)).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check task: %w", err)
	}
	return count > 0, nil
}

// applyPatch runs a single owner-scoped UPDATE. The caller's columns map is
// not modified.
func applyPatch(db *gorm.DB, model interface{}, id uuid.UUID, userID string, columns map[string]interface{}, now time.Time) error {
	updates := make(map[string]interface{}, len(columns)+1)
	for k, v := range columns {
		updates[k] = v
	}
	updates["updated_at"] = now

	result := db.Model(model).Scopes(owner.Scope(userID)).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
