package handlers

import (
	"errors"
	"strconv"

	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/pagination"
	"dbt-setu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile administration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ============================================================
// GET /api/v1/users - profile directory (admin)
// ============================================================
func (h *UserHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	role := c.Query("role")
	search := c.Query("search")

	profiles, meta, err := h.userService.List(c.Context(), role, search, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list profiles")
	}
	return response.Success(c, "Profiles retrieved", fiber.Map{
		"profiles": profiles,
		"meta":     meta,
	})
}

// ============================================================
// GET /api/v1/users/pending - accounts awaiting approval (admin)
// ============================================================
func (h *UserHandler) PendingApprovals(c *fiber.Ctx) error {
	profiles, err := h.userService.ListPendingApproval(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list pending accounts")
	}
	return response.Success(c, "Pending accounts retrieved", profiles)
}

// ============================================================
// POST /api/v1/users/:id/approve - activate an account (admin)
// ============================================================
func (h *UserHandler) Approve(c *fiber.Ctx) error {
	profileID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid profile ID")
	}

	profile, err := h.userService.Approve(c.Context(), uint(profileID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return response.NotFound(c, "Profile not found")
		case errors.Is(err, services.ErrAlreadyApproved):
			return response.Conflict(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to approve account")
		}
	}
	return response.Success(c, "Account approved", profile)
}

// ============================================================
// DELETE /api/v1/users/:id - reject a pending registration (admin)
// ============================================================
func (h *UserHandler) Reject(c *fiber.Ctx) error {
	profileID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid profile ID")
	}

	if err := h.userService.RejectRegistration(c.Context(), uint(profileID)); err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return response.NotFound(c, "Profile not found")
		case errors.Is(err, services.ErrAlreadyApproved):
			return response.Conflict(c, "Approved accounts cannot be rejected")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Admin accounts cannot be removed")
		default:
			return response.InternalServerError(c, "Failed to reject registration")
		}
	}
	return response.Success(c, "Registration rejected", nil)
}

// ============================================================
// GET /api/v1/users/:id - single profile (admin)
// ============================================================
func (h *UserHandler) Get(c *fiber.Ctx) error {
	profileID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid profile ID")
	}

	profile, err := h.userService.Get(c.Context(), uint(profileID))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Profile not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}
	return response.Success(c, "Profile retrieved", profile)
}
