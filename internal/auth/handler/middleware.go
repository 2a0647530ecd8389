package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CasualJavaUser/FlashcardApi/internal/auth/service"
	"github.com/CasualJavaUser/FlashcardApi/pkg/constant"
)

const bearerPrefix = "Bearer "

// AuthRequired gates protected routes: it verifies the bearer credential,
// confirms the subject still exists, and stores the user id in the request
// locals. One existence check per request, no caching.
func AuthRequired(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthenticated(c)
		}

		claims := tokens.DecodeAndVerify(strings.TrimPrefix(header, bearerPrefix))
		if claims == nil {
			return unauthenticated(c)
		}

		userID, ok := tokens.Validate(c.UserContext(), claims)
		if !ok {
			return unauthenticated(c)
		}

		c.Locals(constant.ContextUserIDKey, userID)

		return c.Next()
	}
}

// UserID reads the authenticated user id stored by AuthRequired.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(constant.ContextUserIDKey).(int64)
	return id, ok
}
