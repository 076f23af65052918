package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

var TaskStatuses = []string{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted}
var TaskPriorities = []string{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// Task is an item on the weekly to-do list.
//
// CompletedAt is stored but never set by the status update path.
type Task struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string     `gorm:"size:255;not null;index" json:"userId"`
	Title            string     `gorm:"type:text;not null" json:"title"`
	Description      *string    `gorm:"type:text" json:"description"`
	Status           string     `gorm:"size:20;not null;default:'todo'" json:"status"`
	Priority         string     `gorm:"size:20;not null;default:'medium'" json:"priority"`
	EstimatedMinutes *int       `json:"estimatedMinutes"`
	DueDate          *time.Time `json:"dueDate"`
	CompletedAt      *time.Time `json:"completedAt"`
	CreatedAt        time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (Task) TableName() string {
	return "tasks"
}
