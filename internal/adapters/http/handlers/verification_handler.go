package handlers

import (
	"errors"
	"strconv"
	"strings"

	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"
	"dbt-setu/internal/pkg/risk"

	"github.com/gofiber/fiber/v2"
)

// VerificationHandler handles bank-linking verification endpoints
type VerificationHandler struct {
	verificationService *services.VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationService *services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

type decisionRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=verify reject"`
}

type analyzeRequest struct {
	BankAccount string `json:"bank_account" validate:"required"`
	IfscCode    string `json:"ifsc_code" validate:"required"`
}

// ============================================================
// POST /api/v1/verification - student submits bank details
// ============================================================
func (h *VerificationHandler) Submit(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	fullName, _ := c.Locals("fullName").(string)

	var input services.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	ticket, err := h.verificationService.Submit(c.Context(), profileID, fullName, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMismatchedAccount):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrDuplicateActive):
			return response.Conflict(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to submit verification")
		}
	}
	return response.Created(c, "Verification submitted for institute review", fiber.Map{
		"tracking_no": ticket.TrackingNo,
		"status":      ticket.Status,
	})
}

// ============================================================
// GET /api/v1/verification/my-status - student's current state
// ============================================================
func (h *VerificationHandler) MyStatus(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	ticket, err := h.verificationService.GetMyLatest(c.Context(), profileID)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			// No record means the student never submitted
			return response.Success(c, "Verification status retrieved", fiber.Map{
				"status": "not_submitted",
			})
		}
		return response.InternalServerError(c, "Failed to get status")
	}

	return response.Success(c, "Verification status retrieved", fiber.Map{
		"status":      ticket.Status,
		"tracking_no": ticket.TrackingNo,
		"ticket_id":   ticket.ID,
		"updated_at":  ticket.UpdatedAt,
	})
}

// ============================================================
// GET /api/v1/verification/track/:tracking_no - public tracking
// ============================================================
func (h *VerificationHandler) Track(c *fiber.Ctx) error {
	trackingNo := strings.TrimSpace(c.Params("tracking_no"))
	if trackingNo == "" {
		return response.BadRequest(c, "Tracking number is required")
	}

	ticket, err := h.verificationService.Track(c.Context(), trackingNo)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to track application")
	}

	return response.Success(c, "Application tracked", fiber.Map{
		"tracking_no": ticket.TrackingNo,
		"status":      ticket.Status,
		"updated_at":  ticket.UpdatedAt,
	})
}

// ============================================================
// GET /api/v1/verification/queue - reviewer worklist
// ============================================================
func (h *VerificationHandler) Queue(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	items, err := h.verificationService.ListQueue(c.Context(), domain.Role(role))
	if err != nil {
		if errors.Is(err, services.ErrRoleNotAllowed) {
			return response.Forbidden(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to get review queue")
	}
	return response.Success(c, "Review queue retrieved", items)
}

// ============================================================
// POST /api/v1/verification/:id/decision - reviewer verdict
// ============================================================
func (h *VerificationHandler) Decide(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ticket ID")
	}
	profileID, _ := c.Locals("profileID").(uint)
	role, _ := c.Locals("role").(string)

	var input decisionRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	next, err := h.verificationService.Decide(
		c.Context(), uint(ticketID), profileID,
		domain.Role(role), domain.DecisionOutcome(input.Outcome),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return response.NotFound(c, "Ticket not found")
		case errors.Is(err, services.ErrRoleNotAllowed):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.Conflict(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to apply decision")
		}
	}
	return response.Success(c, "Decision applied", fiber.Map{"status": next})
}

// ============================================================
// GET /api/v1/verification/:id/details - decrypted bank details
// ============================================================
func (h *VerificationHandler) Reveal(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ticket ID")
	}
	role, _ := c.Locals("role").(string)

	details, err := h.verificationService.Reveal(c.Context(), uint(ticketID), domain.Role(role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return response.NotFound(c, "Ticket not found")
		case errors.Is(err, services.ErrRoleNotAllowed):
			return response.Forbidden(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to get details")
		}
	}
	return response.Success(c, "Details retrieved", details)
}

// ============================================================
// POST /api/v1/verification/:id/reapply - reset a rejection
// ============================================================
func (h *VerificationHandler) Reapply(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ticket ID")
	}
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	if err := h.verificationService.Reapply(c.Context(), uint(ticketID), profileID); err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return response.NotFound(c, "Ticket not found")
		case errors.Is(err, services.ErrNotTicketOwner):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.Conflict(c, "Only rejected applications can be re-applied")
		default:
			return response.InternalServerError(c, "Failed to re-apply")
		}
	}
	return response.Success(c, "You can now submit a fresh application", nil)
}

// ============================================================
// POST /api/v1/verification/analyze - reviewer risk tool
// ============================================================
func (h *VerificationHandler) Analyze(c *fiber.Ctx) error {
	var input analyzeRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	result := risk.Analyze(input.BankAccount, strings.ToUpper(input.IfscCode))
	return response.Success(c, "Risk analysis complete", result)
}
