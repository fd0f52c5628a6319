package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"notesnap/internal/chat/handlers"
	"notesnap/internal/chat/repository"
	"notesnap/internal/chat/service"
	"notesnap/internal/common/config"
	"notesnap/internal/common/middleware"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Chat Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	db, err := repository.OpenSQLite(cfg.ChatDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), "migrations/001_init_chat.sql"); err != nil {
		log.Fatalf("init db: %v", err)
	}

	if purged, err := repo.PurgeExpiredDrafts(context.Background()); err != nil {
		log.Printf("purge drafts: %v", err)
	} else if purged > 0 {
		log.Printf("purged %d expired drafts", purged)
	}

	sessionManager := service.NewSessionManager()
	chatHandler := handlers.NewChatHandler(repo, sessionManager, cfg.DiagramsURL)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Chat Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Chat Routes
	// ============================================================

	app.Post("/sessions", chatHandler.CreateSession)
	app.Get("/sessions/:id", chatHandler.GetSession)
	app.Post("/sessions/:id/messages", chatHandler.PostMessage)
	app.Get("/sessions/:id/messages", chatHandler.ListMessages)
	app.Post("/sessions/:id/step/next", chatHandler.StepNext)
	app.Post("/sessions/:id/step/prev", chatHandler.StepPrev)
	app.Post("/sessions/:id/step/seek", chatHandler.StepSeek)
	app.Put("/sessions/:id/draft", chatHandler.SaveDraft)
	app.Get("/sessions/:id/draft", chatHandler.GetDraft)
	app.Delete("/sessions/:id/draft", chatHandler.DeleteDraft)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Chat Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
