package routes

import (
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/config"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Tasks     *handlers.TaskHandler
	Blocks    *handlers.TimeBlockHandler
	Inbox     *handlers.InboxHandler
	Settings  *handlers.SettingsHandler
	AI        *handlers.AIHandler
	Calendar  *handlers.CalendarHandler
	Dashboard *handlers.DashboardHandler
}

// Setup mounts the API. limiterStorage may be nil for in-memory counters.
func Setup(app *fiber.App, cfg *config.Config, limiterStorage fiber.Storage, h Handlers) {
	api := app.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitMax, limiterStorage))

	// Public
	api.Get("/health", h.Health.Check)

	// Everything below requires a verified session.
	protected := api.Group("", middleware.SessionProtected(cfg), middleware.RequireUser())

	protected.Get("/auth/user", h.Auth.User)

	protected.Get("/tasks", h.Tasks.List)
	protected.Post("/tasks", h.Tasks.Create)
	protected.Patch("/tasks/:id", h.Tasks.Update)
	protected.Delete("/tasks/:id", h.Tasks.Delete)

	protected.Get("/time-blocks/export.ics", h.Blocks.Export)
	protected.Get("/time-blocks", h.Blocks.List)
	protected.Post("/time-blocks", h.Blocks.Create)
	protected.Patch("/time-blocks/:id", h.Blocks.Update)
	protected.Delete("/time-blocks/:id", h.Blocks.Delete)

	protected.Get("/inbox", h.Inbox.List)
	protected.Post("/inbox", h.Inbox.Create)
	protected.Patch("/inbox/:id", h.Inbox.Update)
	protected.Delete("/inbox/:id", h.Inbox.Delete)

	protected.Get("/settings", h.Settings.Get)
	protected.Put("/settings", h.Settings.Put)

	protected.Post("/ai/chat", h.AI.Chat)

	protected.Get("/calendar/week", h.Calendar.Week)
	protected.Get("/dashboard", h.Dashboard.Summary)
}
