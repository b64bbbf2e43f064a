package auth_test

import (
	"net/http/httptest"
	"testing"

	"world-crawler/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/favorites", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("metrics") })
	return app
}

func TestAuth(t *testing.T) {
	app := setupApp(auth.Config{
		ApiKey: "secret",
		Skip:   func(c *fiber.Ctx) bool { return c.Path() == "/metrics" },
	})

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"MissingKey", "/favorites", "", fiber.StatusUnauthorized},
		{"WrongKey", "/favorites", "nope", fiber.StatusUnauthorized},
		{"HeaderKey", "/favorites", "secret", fiber.StatusOK},
		{"QueryKey", "/favorites?api_key=secret", "", fiber.StatusOK},
		{"Skipped", "/metrics", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	app := setupApp(auth.Config{})

	resp, err := app.Test(httptest.NewRequest("GET", "/favorites", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
