package handlers

import (
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/schedule"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// nowUTC is swapped in tests.
var nowUTC = func() time.Time { return time.Now().UTC() }

type CalendarHandler struct {
	blocks   *services.TimeBlockService
	settings *services.SettingsService
}

func NewCalendarHandler(blocks *services.TimeBlockService, settings *services.SettingsService) *CalendarHandler {
	return &CalendarHandler{blocks: blocks, settings: settings}
}

// Week projects the week containing ?date=YYYY-MM-DD (today when omitted)
// using the caller's weekStartsOn setting.
func (h *CalendarHandler) Week(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	ref := nowUTC()
	if raw := c.Query("date"); raw != "" {
		ref, err = time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return respondError(c, fieldError("date", "must be a date in YYYY-MM-DD form"))
		}
	}

	weekStartsOn := models.DefaultWeekStartsOn
	settings, err := h.settings.Get(c.UserContext(), userID)
	switch {
	case err == nil:
		weekStartsOn = settings.WeekStartsOn
	case !errors.Is(err, services.ErrNotFound):
		return respondError(c, err)
	}

	weekStart := schedule.WeekStartFromSetting(weekStartsOn)
	start := schedule.StartOfWeek(ref, weekStart)
	blocks, err := h.blocks.ListBetween(c.UserContext(), userID, start, start.AddDate(0, 0, schedule.DaysPerWeek))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule.Project(blocks, ref, weekStart))
}

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	sum, err := h.dashboard.Summary(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sum)
}
