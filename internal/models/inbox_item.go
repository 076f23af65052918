package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InboxItem is a quick-capture entry waiting to be turned into a task or
// dismissed.
type InboxItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"size:255;not null;index" json:"userId"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	IsProcessed bool      `json:"isProcessed"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i *InboxItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (InboxItem) TableName() string {
	return "inbox_items"
}
