package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
)

const upcomingTaskLimit = 5

// Summary is the dashboard overview for one user.
type Summary struct {
	OpenTasks        int                `json:"openTasks"`
	BlocksToday      int                `json:"blocksToday"`
	UnprocessedInbox int                `json:"unprocessedInbox"`
	CompletionRate   int                `json:"completionRate"`
	UpcomingTasks    []models.Task      `json:"upcomingTasks"`
	TodayBlocks      []models.TimeBlock `json:"todayBlocks"`
}

// Summarize builds the dashboard from already-loaded rows. Tasks are expected
// newest first and blocks by start time, as the List methods return them.
// "Today" is the calendar day of now in now's location.
func Summarize(tasks []models.Task, blocks []models.TimeBlock, inbox []models.InboxItem, now time.Time) Summary {
	sum := Summary{
		UpcomingTasks: []models.Task{},
		TodayBlocks:   []models.TimeBlock{},
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			completed++
			continue
		}
		sum.OpenTasks++
		if len(sum.UpcomingTasks) < upcomingTaskLimit {
			sum.UpcomingTasks = append(sum.UpcomingTasks, t)
		}
	}
	if len(tasks) > 0 {
		sum.CompletionRate = int(math.Round(float64(completed) / float64(len(tasks)) * 100))
	}

	y, m, d := now.Date()
	for _, b := range blocks {
		by, bm, bd := b.StartTime.In(now.Location()).Date()
		if by == y && bm == m && bd == d {
			sum.TodayBlocks = append(sum.TodayBlocks, b)
		}
	}
	sum.BlocksToday = len(sum.TodayBlocks)

	for _, item := range inbox {
		if !item.IsProcessed {
			sum.UnprocessedInbox++
		}
	}
	return sum
}

// DashboardService loads a user's rows and summarizes them.
type DashboardService struct {
	tasks  *TaskService
	blocks *TimeBlockService
	inbox  *InboxService
	now    func() time.Time
}

func NewDashboardService(tasks *TaskService, blocks *TimeBlockService, inbox *InboxService) *DashboardService {
	return &DashboardService{tasks: tasks, blocks: blocks, inbox: inbox, now: utcNow}
}

func (s *DashboardService) Summary(ctx context.Context, userID string) (*Summary, error) {
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	blocks, err := s.blocks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	items, err := s.inbox.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	sum := Summarize(tasks, blocks, items, s.now())
	return &sum, nil
}
