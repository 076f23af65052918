package handlers

import (
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InboxHandler struct {
	inbox *services.InboxService
}

func NewInboxHandler(inbox *services.InboxService) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

func (h *InboxHandler) List(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.inbox.List(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *InboxHandler) Create(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CreateInboxItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	in, err := services.NewInsertInboxItem(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.inbox.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *InboxHandler) Update(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateInboxItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	patch, err := services.NewInboxItemPatch(req)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.inbox.Update(c.UserContext(), id, userID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *InboxHandler) Delete(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(dto.SuccessResponse{Success: true})
	}

	if err := h.inbox.Delete(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
