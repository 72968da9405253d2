package handlers

import (
	"errors"

	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the admin overview endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// ============================================================
// GET /api/v1/dashboard/summary - reviewer queue counters
// ============================================================
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	summary, err := h.dashboardService.GetReviewerSummary(c.Context(), domain.Role(role))
	if err != nil {
		if errors.Is(err, services.ErrRoleNotAllowed) {
			return response.Forbidden(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to get summary")
	}
	return response.Success(c, "Summary retrieved", summary)
}

// ============================================================
// GET /api/v1/dashboard/stats - portal-wide counters (admin)
// ============================================================
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard stats")
	}
	return response.Success(c, "Dashboard stats retrieved", stats)
}
