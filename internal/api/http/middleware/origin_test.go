package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestOriginAllowlist(t *testing.T) {
	app := fiber.New()
	app.Use(OriginAllowlist([]string{
		"http://localhost:4200",
		"https://www.tirumalaplanners.com",
	}))
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	cases := []struct {
		name   string
		origin string
		status int
	}{
		{"allowed origin", "https://www.tirumalaplanners.com", fiber.StatusOK},
		{"allowed localhost", "http://localhost:4200", fiber.StatusOK},
		{"no origin header", "", fiber.StatusOK},
		{"unknown origin", "https://evil.example.com", fiber.StatusForbidden},
		{"scheme mismatch", "http://www.tirumalaplanners.com", fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.status, resp.StatusCode)

			if tc.status == fiber.StatusForbidden {
				var payload map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
				require.Equal(t, "origin not allowed", payload["error"])
			}
		})
	}
}
