package handlers

import (
	"encoding/json"
	"log"

	"notesnap/internal/diagram"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handlers
// ============================================================

func decodeState(c fiber.Ctx) (diagram.State, bool) {
	var st diagram.State
	if len(c.Body()) == 0 {
		return st, false
	}
	if err := json.Unmarshal(c.Body(), &st); err != nil {
		log.Printf("[RENDER] decode error: %v", err)
		return st, false
	}
	return st, true
}

// RenderDiagram renders a diagram state into the JSON envelope (SVG, step
// definitions, cursor position). Unknown types still return 200 with a
// fallback panel so the tutoring UI never crashes.
func RenderDiagram(c fiber.Ctx) error {
	st, ok := decodeState(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "diagram state JSON required",
		})
	}

	result := diagram.Render(st)
	return c.JSON(result)
}

// RenderDiagramSVG returns the bare SVG document.
func RenderDiagramSVG(c fiber.Ctx) error {
	st, ok := decodeState(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "diagram state JSON required",
		})
	}

	result := diagram.Render(st)
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(result.SVG)
}

// RenderDiagramPNG rasterizes the fully revealed diagram.
func RenderDiagramPNG(c fiber.Ctx) error {
	st, ok := decodeState(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "diagram state JSON required",
		})
	}

	data, err := diagram.RenderPNG(st, int(st.Width), int(st.Height))
	if err != nil {
		log.Printf("[RENDER] png error: %v", err)
		return c.Status(422).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(data)
}
