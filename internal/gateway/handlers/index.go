package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// API Index
// ============================================================

// APIIndex lists the gateway surface for quick manual exploration.
func APIIndex(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "notesnap gateway",
		"routes": []string{
			"POST /api/v1/render",
			"POST /api/v1/render/svg",
			"POST /api/v1/render/png",
			"POST /api/v1/calculate",
			"GET  /api/v1/types",
			"POST /api/v1/sessions",
			"GET  /api/v1/sessions/:id",
			"POST /api/v1/sessions/:id/messages",
			"GET  /api/v1/sessions/:id/messages",
			"POST /api/v1/sessions/:id/step/next",
			"POST /api/v1/sessions/:id/step/prev",
			"POST /api/v1/sessions/:id/step/seek",
			"PUT  /api/v1/sessions/:id/draft",
			"GET  /api/v1/sessions/:id/draft",
			"DELETE /api/v1/sessions/:id/draft",
		},
	})
}
