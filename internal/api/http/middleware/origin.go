package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// OriginAllowlist rejects any browser request whose Origin header is
// not in the configured list. Requests without an Origin header
// (same-origin navigation, server-to-server) always pass.
func OriginAllowlist(allowed []string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		if _, ok := set[origin]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "origin not allowed"})
		}
		return c.Next()
	}
}
