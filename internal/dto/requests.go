package dto

import "time"

// Request payloads use pointers so that an omitted field can be told apart
// from a zero value. None of them carries a user id: ownership always comes
// from the session.

type CreateTaskRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	Priority         *string    `json:"priority"`
	EstimatedMinutes *int       `json:"estimatedMinutes"`
	DueDate          *time.Time `json:"dueDate"`
}

// UpdateTaskRequest uses Nullable for the columns a PATCH may clear.
type UpdateTaskRequest struct {
	Title            *string             `json:"title"`
	Description      Nullable[string]    `json:"description"`
	Status           *string             `json:"status"`
	Priority         *string             `json:"priority"`
	EstimatedMinutes Nullable[int]       `json:"estimatedMinutes"`
	DueDate          Nullable[time.Time] `json:"dueDate"`
}

type CreateTimeBlockRequest struct {
	TaskID      *string    `json:"taskId"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Color       *string    `json:"color"`
	IsAllDay    *bool      `json:"isAllDay"`
}

// UpdateTimeBlockRequest takes null or "" for taskId to unlink the block.
type UpdateTimeBlockRequest struct {
	TaskID      Nullable[string] `json:"taskId"`
	Title       *string          `json:"title"`
	Description Nullable[string] `json:"description"`
	StartTime   *time.Time       `json:"startTime"`
	EndTime     *time.Time       `json:"endTime"`
	Color       *string          `json:"color"`
	IsAllDay    *bool            `json:"isAllDay"`
}

type CreateInboxItemRequest struct {
	Content     *string `json:"content"`
	Notes       *string `json:"notes"`
	IsProcessed *bool   `json:"isProcessed"`
}

type UpdateInboxItemRequest struct {
	Content     *string          `json:"content"`
	Notes       Nullable[string] `json:"notes"`
	IsProcessed *bool            `json:"isProcessed"`
}

type SettingsRequest struct {
	WorkStartTime       *string `json:"workStartTime"`
	WorkEndTime         *string `json:"workEndTime"`
	DefaultTaskDuration *int    `json:"defaultTaskDuration"`
	TimeZone            *string `json:"timeZone"`
	WeekStartsOn        *int    `json:"weekStartsOn"`
	EnableNotifications *bool   `json:"enableNotifications"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
