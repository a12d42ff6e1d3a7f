package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	jwtware "github.com/gofiber/contrib/jwt"

	"jobboard/internal/config"
	"jobboard/internal/credentials"
	"jobboard/internal/dto"
	"jobboard/internal/identity"
	"jobboard/internal/repository"
)

// JWTProtected validates the session token from the HTTP-only cookie.
// Absence, a bad signature or expiry all halt here with 401.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + credentials.CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// AttachIdentity resolves the token subject to a live user record and makes
// it the request identity. Runs after JWTProtected.
func AttachIdentity(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}
		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c)
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return unauthorized(c)
		}

		identity.Set(c, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Success: false, Message: "Unauthorized",
	})
}
