package handlers

import (
	"notesnap/internal/diagram"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Type Listing
// ============================================================

// ListTypes returns the known diagram types grouped by category.
func ListTypes(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"types":  diagram.KnownTypes(),
		"groups": diagram.TypeGroups(),
	})
}
