package handlers

import (
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/schedule"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TimeBlockHandler struct {
	blocks *services.TimeBlockService
}

func NewTimeBlockHandler(blocks *services.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{blocks: blocks}
}

func (h *TimeBlockHandler) List(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	blocks, err := h.blocks.List(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blocks)
}

func (h *TimeBlockHandler) Create(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CreateTimeBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	in, err := services.NewInsertTimeBlock(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	block, err := h.blocks.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

func (h *TimeBlockHandler) Update(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateTimeBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	patch, err := services.NewTimeBlockPatch(req)
	if err != nil {
		return respondError(c, err)
	}
	block, err := h.blocks.Update(c.UserContext(), id, userID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(block)
}

func (h *TimeBlockHandler) Delete(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(dto.SuccessResponse{Success: true})
	}

	if err := h.blocks.Delete(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Export serves every block as an iCalendar feed.
func (h *TimeBlockHandler) Export(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	blocks, err := h.blocks.List(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="time-blocks.ics"`)
	return c.SendString(schedule.ExportICS(blocks, nowUTC()))
}
