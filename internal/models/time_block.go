package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultBlockColor = "#414A37"

// TimeBlock is a scheduled interval on the calendar. Deleting the linked
// task deletes the block with it.
type TimeBlock struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string     `gorm:"size:255;not null;index" json:"userId"`
	TaskID      *uuid.UUID `gorm:"type:uuid;index" json:"taskId"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	StartTime   time.Time  `gorm:"not null;index" json:"startTime"`
	EndTime     time.Time  `gorm:"not null" json:"endTime"`
	Color       string     `gorm:"size:9" json:"color"`
	IsAllDay    bool       `json:"isAllDay"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Task        *Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *TimeBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Minutes returns the block duration. It is negative when the end precedes
// the start.
func (b TimeBlock) Minutes() float64 {
	return b.EndTime.Sub(b.StartTime).Minutes()
}

func (TimeBlock) TableName() string {
	return "time_blocks"
}
