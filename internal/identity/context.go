// Package identity carries the authenticated user through a request.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/models"
)

const localsKey = "identity"

var ErrNoIdentity = errors.New("identity: no authenticated user in context")

// Set attaches the resolved user to the request.
func Set(c *fiber.Ctx, user *models.User) {
	c.Locals(localsKey, user)
}

// Current returns the authenticated user attached by the gateway.
func Current(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(localsKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoIdentity
	}
	return user, nil
}
