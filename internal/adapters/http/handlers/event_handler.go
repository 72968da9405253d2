package handlers

import (
	"errors"
	"strconv"

	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles awareness camp / notice endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ============================================================
// POST /api/v1/events - post an event (institution/panchayat)
// ============================================================
func (h *EventHandler) Create(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	fullName, _ := c.Locals("fullName").(string)
	role, _ := c.Locals("role").(string)

	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	event, err := h.eventService.Create(c.Context(), profileID, fullName, domain.Role(role), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoleNotAllowed):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid event date")
		default:
			return response.InternalServerError(c, "Failed to post event")
		}
	}
	return response.Created(c, "Event posted", event)
}

// ============================================================
// GET /api/v1/events - all events, newest first (public)
// ============================================================
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.eventService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved", events)
}

// ============================================================
// GET /api/v1/events/mine - caller's own postings
// ============================================================
func (h *EventHandler) Mine(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	events, err := h.eventService.ListMine(c.Context(), profileID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved", events)
}

// ============================================================
// DELETE /api/v1/events/:id - remove a posting (owner/admin)
// ============================================================
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}
	profileID, _ := c.Locals("profileID").(uint)
	role, _ := c.Locals("role").(string)

	if err := h.eventService.Delete(c.Context(), uint(eventID), profileID, domain.Role(role)); err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You can only delete your own events")
		default:
			return response.InternalServerError(c, "Failed to delete event")
		}
	}
	return response.Success(c, "Event deleted", nil)
}
