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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertUserSettings is a validated settings write. Row carries defaults for
// every omitted field; columns names the fields the caller actually sent,
// which are the only ones overwritten on an existing row.
type InsertUserSettings struct {
	row     models.UserSettings
	columns []string
}

func NewInsertUserSettings(userID string, req dto.SettingsRequest) (InsertUserSettings, error) {
	v := &ValidationError{}
	if userID == "" {
		v.add("userId", "is required")
	}
	v.clock("workStartTime", req.WorkStartTime)
	v.clock("workEndTime", req.WorkEndTime)
	v.positive("defaultTaskDuration", req.DefaultTaskDuration)
	v.optionalText("timeZone", req.TimeZone)
	if req.WeekStartsOn != nil && *req.WeekStartsOn != 0 && *req.WeekStartsOn != 1 {
		v.add("weekStartsOn", "must be 0 (Sunday) or 1 (Monday)")
	}
	if err := v.err(); err != nil {
		return InsertUserSettings{}, err
	}

	row := models.UserSettings{
		UserID:              userID,
		WorkStartTime:       models.DefaultWorkStartTime,
		WorkEndTime:         models.DefaultWorkEndTime,
		DefaultTaskDuration: models.DefaultTaskDuration,
		TimeZone:            models.DefaultTimeZone,
		WeekStartsOn:        models.DefaultWeekStartsOn,
		EnableNotifications: models.DefaultEnableNotifications,
	}
	var cols []string
	if req.WorkStartTime != nil {
		row.WorkStartTime = *req.WorkStartTime
		cols = append(cols, "work_start_time")
	}
	if req.WorkEndTime != nil {
		row.WorkEndTime = *req.WorkEndTime
		cols = append(cols, "work_end_time")
	}
	if req.DefaultTaskDuration != nil {
		row.DefaultTaskDuration = *req.DefaultTaskDuration
		cols = append(cols, "default_task_duration")
	}
	if req.TimeZone != nil {
		row.TimeZone = strings.TrimSpace(*req.TimeZone)
		cols = append(cols, "time_zone")
	}
	if req.WeekStartsOn != nil {
		row.WeekStartsOn = *req.WeekStartsOn
		cols = append(cols, "week_starts_on")
	}
	if req.EnableNotifications != nil {
		row.EnableNotifications = *req.EnableNotifications
		cols = append(cols, "enable_notifications")
	}
	return InsertUserSettings{row: row, columns: cols}, nil
}

type SettingsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db, now: utcNow}
}

// Get returns ErrNotFound when the user has never saved settings.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &settings, nil
}

// Upsert inserts the settings row or overwrites the provided fields of the
// existing one in a single statement keyed on user_id.
func (s *SettingsService) Upsert(ctx context.Context, in InsertUserSettings) (*models.UserSettings, error) {
	if in.row.UserID == "" {
		return nil, fieldInvalid("userId", "is required")
	}

	row := in.row
	now := s.now()
	row.CreatedAt = now
	row.UpdatedAt = now

	cols := append(append([]string{}, in.columns...), "updated_at")
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}
	return s.Get(ctx, row.UserID)
}
