package middleware

import (
	"github.com/gofiber/fiber/v2"

	"jobboard/internal/dto"
	"jobboard/internal/identity"
	"jobboard/internal/models"
)

// RequireRole gates a route on the identity's role. The allowed set comes
// from the route table, so every role decision lives in one place.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := identity.Current(c)
		if err != nil {
			return unauthorized(c)
		}
		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false, Message: "Access denied",
		})
	}
}
