package middleware

import (
	"strings"

	"Backend-EaseForm/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT authenticates the bearer credential and stores the acting
// principal in Locals. Every owner-scoped route sits behind it.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	if blacklisted, err := utils.IsTokenBlacklisted(tokenStr); err == nil && blacklisted {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals("hostId", claims.HostID)
	c.Locals("email", claims.Email)
	c.Locals("token", tokenStr)

	return c.Next()
}
