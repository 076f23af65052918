package models

import "time"

// User mirrors the identity supplied by the session provider. The ID is the
// provider subject and never changes once written.
type User struct {
	ID              string    `gorm:"size:255;primaryKey" json:"id"`
	Email           *string   `gorm:"size:255;uniqueIndex" json:"email"`
	FirstName       *string   `gorm:"size:255" json:"firstName"`
	LastName        *string   `gorm:"size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"size:1024" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
