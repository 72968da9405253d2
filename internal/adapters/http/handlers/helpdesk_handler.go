package handlers

import (
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HelpdeskHandler handles the FAQ knowledge base and the chat bot
type HelpdeskHandler struct {
	helpdeskService *services.HelpdeskService
}

// NewHelpdeskHandler creates a new helpdesk handler
func NewHelpdeskHandler(helpdeskService *services.HelpdeskService) *HelpdeskHandler {
	return &HelpdeskHandler{
		helpdeskService: helpdeskService,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// ============================================================
// GET /api/v1/helpdesk/faqs?q= - knowledge base (public)
// ============================================================
func (h *HelpdeskHandler) FAQs(c *fiber.Ctx) error {
	return response.Success(c, "FAQs retrieved", h.helpdeskService.Search(c.Query("q")))
}

// ============================================================
// POST /api/v1/helpdesk/chat - ask the helpdesk bot (public)
// ============================================================
func (h *HelpdeskHandler) Chat(c *fiber.Ctx) error {
	var input chatRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	return response.Success(c, "Reply generated", fiber.Map{
		"reply": h.helpdeskService.Reply(input.Message),
	})
}
