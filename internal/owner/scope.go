package owner

import "gorm.io/gorm"

// Scope returns a GORM scope that filters by the owning user.
func Scope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
