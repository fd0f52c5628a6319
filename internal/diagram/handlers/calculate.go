package handlers

import (
	"errors"
	"log"

	"notesnap/internal/diagram"
	"notesnap/internal/geometry"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Calculate Handler
// ============================================================

// CalculateMeasurements runs the geometry calculators for a shape
// descriptor and returns the measurements plus localized derivations.
func CalculateMeasurements(c fiber.Ctx) error {
	st, ok := decodeState(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "diagram state JSON required",
		})
	}

	result, err := diagram.Calculate(st)
	if err != nil {
		log.Printf("[CALC] type=%s: %v", st.Type, err)
		if errors.Is(err, geometry.ErrNonPositive) || errors.Is(err, geometry.ErrDegenerate) {
			return c.Status(422).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
