package main

import (
	"fmt"
	"log"
	"time"

	"notesnap/internal/common/config"
	"notesnap/internal/common/middleware"
	"notesnap/internal/gateway/handlers"
	"notesnap/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe)
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", handlers.APIIndex)

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	// Diagram Service
	api.Post("/render", proxy.ProxyTo(cfg.DiagramsURL+"/render"))
	api.Post("/render/svg", proxy.ProxyTo(cfg.DiagramsURL+"/render/svg"))
	api.Post("/render/png", proxy.ProxyTo(cfg.DiagramsURL+"/render/png"))
	api.Post("/calculate", proxy.ProxyTo(cfg.DiagramsURL+"/calculate"))
	api.Get("/types", proxy.ProxyTo(cfg.DiagramsURL+"/types"))

	// Chat Service
	api.Post("/sessions", proxy.ProxyTo(cfg.ChatURL+"/sessions"))
	api.Get("/sessions/:id", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s", cfg.ChatURL, c.Params("id")))
	})
	api.Post("/sessions/:id/messages", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/messages", cfg.ChatURL, c.Params("id")))
	})
	api.Get("/sessions/:id/messages", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/messages", cfg.ChatURL, c.Params("id")))
	})
	api.Post("/sessions/:id/step/next", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/step/next", cfg.ChatURL, c.Params("id")))
	})
	api.Post("/sessions/:id/step/prev", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/step/prev", cfg.ChatURL, c.Params("id")))
	})
	api.Post("/sessions/:id/step/seek", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/step/seek", cfg.ChatURL, c.Params("id")))
	})
	api.Put("/sessions/:id/draft", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/draft", cfg.ChatURL, c.Params("id")))
	})
	api.Get("/sessions/:id/draft", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/draft", cfg.ChatURL, c.Params("id")))
	})
	api.Delete("/sessions/:id/draft", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/sessions/%s/draft", cfg.ChatURL, c.Params("id")))
	})

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /render to %s", cfg.DiagramsURL)
	log.Printf("Proxying /sessions to %s", cfg.ChatURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
