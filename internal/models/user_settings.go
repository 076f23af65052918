package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults applied when a settings row is first written without the field.
const (
	DefaultWorkStartTime       = "09:00"
	DefaultWorkEndTime         = "17:00"
	DefaultTaskDuration        = 60
	DefaultTimeZone            = "UTC"
	DefaultWeekStartsOn        = 1
	DefaultEnableNotifications = true
)

// UserSettings holds per-user preferences. There is at most one row per user.
type UserSettings struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              string    `gorm:"size:255;not null;uniqueIndex" json:"userId"`
	WorkStartTime       string    `gorm:"size:5" json:"workStartTime"`
	WorkEndTime         string    `gorm:"size:5" json:"workEndTime"`
	DefaultTaskDuration int       `json:"defaultTaskDuration"`
	TimeZone            string    `gorm:"size:64" json:"timeZone"`
	WeekStartsOn        int       `json:"weekStartsOn"`
	EnableNotifications bool      `json:"enableNotifications"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (UserSettings) TableName() string {
	return "user_settings"
}
