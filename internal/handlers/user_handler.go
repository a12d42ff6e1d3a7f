package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/credentials"
	"jobboard/internal/dto"
	"jobboard/internal/identity"
	"jobboard/internal/services"
)

type UserHandler struct {
	users  *services.UserService
	tokens *credentials.Manager
}

func NewUserHandler(users *services.UserService, tokens *credentials.Manager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// Register handles POST /user/register. Success issues a session cookie.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.users.Register(c.Context(), &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Message,
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Email already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Registration failed",
		})
	}

	token, err := h.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Registration failed",
		})
	}
	h.tokens.Attach(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registered successfully",
		"user":    user,
	})
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.users.Login(c.Context(), &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Message,
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid credentials",
			})
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid role",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Login failed",
		})
	}

	token, err := h.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Login failed",
		})
	}
	h.tokens.Attach(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}

// Logout handles GET /user/logout by expiring the session cookie.
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	h.tokens.Clear(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// GetUser handles GET /user/getuser.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
