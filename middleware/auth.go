// middleware/auth.go
package middleware

import (
	"log"

	"memory-match-system/utils"

	"github.com/gofiber/fiber/v2"
)

// UserContextMiddleware verifies the signed session cookie and attaches the
// authenticated user id to the request context.
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies("token")
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"msg":     "Unauthorized: Missing token",
			})
		}

		userID, err := utils.VerifyToken(tokenStr)
		if err != nil {
			log.Printf("[AUTH] rejected session token on %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"msg":     "Unauthorized: Invalid token",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
