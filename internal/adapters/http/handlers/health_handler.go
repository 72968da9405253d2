package handlers

import (
	"time"

	"dbt-setu/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ============================================================
// GET / - service banner
// ============================================================
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "DBT Setu API",
		"version": "1.0",
		"docs":    "/swagger/index.html",
	})
}

// ============================================================
// GET /health - liveness + database check
// ============================================================
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := config.HealthCheck(); err != nil {
		dbStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
