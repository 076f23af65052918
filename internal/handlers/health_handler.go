package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/database"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status, dbStatus := "ok", "ok"
	code := fiber.StatusOK
	if err := database.PingDB(h.db); err != nil {
		status, dbStatus = "degraded", "unhealthy"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: nowUTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
