package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/dumps", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendString("docs") })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		header map[string]string
		want   int
	}{
		{"Disabled", Config{}, "/dumps", nil, fiber.StatusOK},
		{"Missing Key", Config{ApiKey: "secret"}, "/dumps", nil, fiber.StatusUnauthorized},
		{"Wrong Key", Config{ApiKey: "secret"}, "/dumps", map[string]string{HeaderName: "nope"}, fiber.StatusUnauthorized},
		{"Header Key", Config{ApiKey: "secret"}, "/dumps", map[string]string{HeaderName: "secret"}, fiber.StatusOK},
		{"Bearer Key", Config{ApiKey: "secret"}, "/dumps", map[string]string{"Authorization": "Bearer secret"}, fiber.StatusOK},
		{"Skipped Path", Config{ApiKey: "secret", Skip: []string{"/swagger"}}, "/swagger/index.html", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
