package handlers

import (
	"errors"
	"strconv"

	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VolunteerHandler handles DBT Sahayak internship endpoints
type VolunteerHandler struct {
	volunteerService *services.VolunteerService
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerService *services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// ============================================================
// POST /api/v1/volunteers - internship application (public)
// ============================================================
func (h *VolunteerHandler) Apply(c *fiber.Ctx) error {
	var input services.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	volunteer, err := h.volunteerService.Apply(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrVolunteerExists) {
			return response.Conflict(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to submit application")
	}
	return response.Created(c, "Welcome aboard, DBT Sahayak!", volunteer)
}

// ============================================================
// GET /api/v1/volunteers - all volunteers (admin)
// ============================================================
func (h *VolunteerHandler) List(c *fiber.Ctx) error {
	volunteers, err := h.volunteerService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list volunteers")
	}
	return response.Success(c, "Volunteers retrieved", volunteers)
}

// ============================================================
// GET /api/v1/volunteers/:id/progress - internship progress
// ============================================================
func (h *VolunteerHandler) Progress(c *fiber.Ctx) error {
	volunteerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid volunteer ID")
	}

	volunteer, progress, err := h.volunteerService.GetProgress(c.Context(), uint(volunteerID))
	if err != nil {
		if errors.Is(err, services.ErrVolunteerNotFound) {
			return response.NotFound(c, "Volunteer not found")
		}
		return response.InternalServerError(c, "Failed to get progress")
	}
	return response.Success(c, "Progress retrieved", fiber.Map{
		"volunteer": volunteer,
		"progress":  progress,
	})
}

// ============================================================
// POST /api/v1/volunteers/:id/certificate - issue (admin)
// ============================================================
func (h *VolunteerHandler) IssueCertificate(c *fiber.Ctx) error {
	volunteerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid volunteer ID")
	}

	volunteer, err := h.volunteerService.IssueCertificate(c.Context(), uint(volunteerID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVolunteerNotFound):
			return response.NotFound(c, "Volunteer not found")
		case errors.Is(err, services.ErrAlreadyCertified):
			return response.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInternshipOngoing):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to issue certificate")
		}
	}
	return response.Success(c, "Certificate issued", volunteer)
}
