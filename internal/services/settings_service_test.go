package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSettingsService(t *testing.T) (*SettingsService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewSettingsService(db)
	svc.now = testutil.Clock(epoch, time.Minute)
	return svc, db
}

func upsertSettings(t *testing.T, svc *SettingsService, userID string, req dto.SettingsRequest) *models.UserSettings {
	t.Helper()
	in, err := NewInsertUserSettings(userID, req)
	require.NoError(t, err)
	settings, err := svc.Upsert(context.Background(), in)
	require.NoError(t, err)
	return settings
}

func TestSettingsService_GetMissing(t *testing.T) {
	svc, _ := newSettingsService(t)

	_, err := svc.Get(context.Background(), alice)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsService_FirstUpsertFillsDefaults(t *testing.T) {
	svc, _ := newSettingsService(t)

	settings := upsertSettings(t, svc, alice, dto.SettingsRequest{TimeZone: testutil.Ptr("Europe/Istanbul")})

	assert.Equal(t, alice, settings.UserID)
	assert.Equal(t, "Europe/Istanbul", settings.TimeZone)
	assert.Equal(t, models.DefaultWorkStartTime, settings.WorkStartTime)
	assert.Equal(t, models.DefaultWorkEndTime, settings.WorkEndTime)
	assert.Equal(t, models.DefaultTaskDuration, settings.DefaultTaskDuration)
	assert.Equal(t, models.DefaultWeekStartsOn, settings.WeekStartsOn)
	assert.True(t, settings.EnableNotifications)
}

func TestSettingsService_SecondUpsertWinsAndKeepsOneRow(t *testing.T) {
	svc, db := newSettingsService(t)

	first := upsertSettings(t, svc, alice, dto.SettingsRequest{
		WorkStartTime: testutil.Ptr("08:00"),
		WeekStartsOn:  testutil.Ptr(0),
	})
	second := upsertSettings(t, svc, alice, dto.SettingsRequest{
		WorkStartTime:       testutil.Ptr("10:30"),
		EnableNotifications: testutil.Ptr(false),
	})

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Where("user_id = ?", alice).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "10:30", second.WorkStartTime)
	assert.False(t, second.EnableNotifications)
	// Fields absent from the second write keep the first write's values.
	assert.Equal(t, 0, second.WeekStartsOn)
	sameInstant(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestSettingsService_UsersAreIndependent(t *testing.T) {
	svc, _ := newSettingsService(t)

	upsertSettings(t, svc, alice, dto.SettingsRequest{DefaultTaskDuration: testutil.Ptr(25)})
	upsertSettings(t, svc, bob, dto.SettingsRequest{DefaultTaskDuration: testutil.Ptr(90)})

	a, err := svc.Get(context.Background(), alice)
	require.NoError(t, err)
	b, err := svc.Get(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, 25, a.DefaultTaskDuration)
	assert.Equal(t, 90, b.DefaultTaskDuration)
}

func TestNewInsertUserSettings_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.SettingsRequest
		field string
	}{
		{"clock without colon", dto.SettingsRequest{WorkStartTime: testutil.Ptr("0900")}, "workStartTime"},
		{"clock out of range", dto.SettingsRequest{WorkEndTime: testutil.Ptr("25:00")}, "workEndTime"},
		{"single digit hour", dto.SettingsRequest{WorkEndTime: testutil.Ptr("9:00")}, "workEndTime"},
		{"zero duration", dto.SettingsRequest{DefaultTaskDuration: testutil.Ptr(0)}, "defaultTaskDuration"},
		{"blank zone", dto.SettingsRequest{TimeZone: testutil.Ptr(" ")}, "timeZone"},
		{"week start", dto.SettingsRequest{WeekStartsOn: testutil.Ptr(3)}, "weekStartsOn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInsertUserSettings(alice, tt.req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}
