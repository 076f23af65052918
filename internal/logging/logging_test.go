package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandler_PersistsErrorsOnly(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, 10, time.Hour)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("not stored")
	logger.Error("request failed",
		"user_id", "alice",
		"method", "POST",
		"path", "/api/tasks",
		"error", "boom",
		"attempt", 2,
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "alice", *entry.UserID)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/tasks", entry.Path)
	assert.Equal(t, "boom", entry.Error)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.EqualValues(t, 2, extra["attempt"])
}

func TestPGHandler_FlushesWhenBatchFills(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, 2, time.Hour)
	logger := slog.New(h)

	logger.Error("one")
	logger.Error("two")

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 2
	}, 2*time.Second, 10*time.Millisecond)
	h.Stop()
	h.Stop()
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	m := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(m).With("component", "test")

	logger.Info("hello")
	logger.Error("bad")

	assert.Contains(t, info.String(), `"msg":"hello"`)
	assert.Contains(t, info.String(), `"msg":"bad"`)
	assert.NotContains(t, errs.String(), "hello")
	assert.Contains(t, errs.String(), `"component":"test"`)
	assert.False(t, m.Enabled(context.Background(), slog.LevelDebug))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_KeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	m := NewMultiHandler(failingHandler{}, slog.NewJSONHandler(&buf, nil))

	err := m.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0))

	assert.ErrorContains(t, err, "sink down")
	assert.Contains(t, buf.String(), "still written")
}

func TestPurgeBefore(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, age := range []int{1, 29, 31, 90} {
		require.NoError(t, db.Create(&models.SystemLog{
			Timestamp: now.AddDate(0, 0, -age),
			Level:     "ERROR",
			Message:   "old",
		}).Error)
	}

	deleted, err := PurgeBefore(db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}

func TestStartCleanup_RejectsBadSchedule(t *testing.T) {
	_, err := StartCleanup(testutil.NewDB(t), "every tuesday", 30)
	assert.Error(t, err)
}

func TestStartCleanup_Schedules(t *testing.T) {
	c, err := StartCleanup(testutil.NewDB(t), "@daily", 30)
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
