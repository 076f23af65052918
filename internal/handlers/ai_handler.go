package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	advisor advisor.Advisor
}

func NewAIHandler(a advisor.Advisor) *AIHandler {
	return &AIHandler{advisor: a}
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Message is required",
			Fields:  []dto.FieldError{{Field: "message", Message: "is required"}},
		})
	}

	reply, err := h.advisor.Suggest(c.UserContext(), req.Message)
	switch {
	case errors.Is(err, advisor.ErrUnavailable):
		return c.JSON(dto.ChatResponse{Response: advisor.UnavailableMessage})
	case errors.Is(err, advisor.ErrUpstream):
		slog.Warn("ai advisor failed", "request_id", requestID(c), "error", err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "AI service is unavailable, please try again later",
		})
	case err != nil:
		return respondError(c, err)
	}
	return c.JSON(dto.ChatResponse{Response: reply})
}
