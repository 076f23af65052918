package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertUser is the profile the session provider vouches for. Nil fields are
// left untouched on an existing row.
type UpsertUser struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: utcNow}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// Upsert creates the user or, on id conflict, overwrites the provided
// profile fields and refreshes updated_at.
func (s *UserService) Upsert(ctx context.Context, in UpsertUser) (*models.User, error) {
	if in.ID == "" {
		return nil, fieldInvalid("id", "is required")
	}

	now := s.now()
	user := models.User{
		ID:              in.ID,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	cols := []string{"updated_at"}
	if in.Email != nil {
		cols = append(cols, "email")
	}
	if in.FirstName != nil {
		cols = append(cols, "first_name")
	}
	if in.LastName != nil {
		cols = append(cols, "last_name")
	}
	if in.ProfileImageURL != nil {
		cols = append(cols, "profile_image_url")
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return s.Get(ctx, in.ID)
}
