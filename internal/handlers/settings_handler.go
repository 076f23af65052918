package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get answers null for a user who never saved settings; the client then
// falls back to its own defaults.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	settings, err := h.settings.Get(c.UserContext(), userID)
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(nil)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	in, err := services.NewInsertUserSettings(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	settings, err := h.settings.Upsert(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}
