package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"storefront-api/configs"
	"storefront-api/responses"
)

// Protect extracts and validates the bearer token, saving the caller's id and
// role into Locals for the handlers.
func Protect(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
	}

	userId, ok := (*claims)["id"].(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	role, _ := (*claims)["role"].(string)

	c.Locals("userId", userId)
	c.Locals("role", role)

	return c.Next()
}

// AdminOnly must run after Protect.
func AdminOnly(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != "admin" {
		return responses.Error(c, fiber.StatusForbidden, "Not authorized as admin")
	}
	return c.Next()
}
