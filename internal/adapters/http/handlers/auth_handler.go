package handlers

import (
	"errors"

	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate is the shared request validator
var validate = validator.New()

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ============================================================
// POST /api/v1/auth/register - create a portal account
// ============================================================
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	profile, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMobileTaken), errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, err.Error())
		case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to register")
		}
	}

	message := "Registration successful"
	if !profile.IsApproved {
		message = "Registration received. Your account will be activated after admin approval."
	}
	return response.Created(c, message, profile)
}

// ============================================================
// POST /api/v1/auth/login - authenticate and issue tokens
// ============================================================
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid mobile number or password")
		case errors.Is(err, services.ErrAccountNotApproved):
			return response.Forbidden(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}
	return response.Success(c, "Login successful", result)
}

// ============================================================
// POST /api/v1/auth/refresh - rotate the refresh token
// ============================================================
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input refreshRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.RefreshToken == "" {
		return response.BadRequest(c, "refresh_token is required")
	}

	result, err := h.authService.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			return response.Unauthorized(c, "Refresh token expired")
		case errors.Is(err, services.ErrRefreshTokenReused):
			return response.Unauthorized(c, "Session revoked. Please login again.")
		case errors.Is(err, services.ErrAccountNotApproved):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, services.ErrProfileNotFound):
			return response.Unauthorized(c, "Invalid refresh token")
		default:
			return response.InternalServerError(c, "Failed to refresh token")
		}
	}
	return response.Success(c, "Token refreshed", result)
}

// ============================================================
// POST /api/v1/auth/logout - revoke the presented session
// ============================================================
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input refreshRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.RefreshToken == "" {
		return response.BadRequest(c, "refresh_token is required")
	}

	if err := h.authService.Logout(c.Context(), input.RefreshToken); err != nil {
		return response.InternalServerError(c, "Failed to logout")
	}
	return response.Success(c, "Logged out", nil)
}

// ============================================================
// POST /api/v1/auth/logout-all - revoke every session
// ============================================================
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	if err := h.authService.LogoutAll(c.Context(), profileID); err != nil {
		return response.InternalServerError(c, "Failed to logout")
	}
	return response.Success(c, "All sessions revoked", nil)
}

// ============================================================
// GET /api/v1/auth/me - the authenticated profile
// ============================================================
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	profile, err := h.authService.Me(c.Context(), profileID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Profile not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}
	return response.Success(c, "Profile retrieved", profile)
}
