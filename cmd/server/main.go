package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/rmoreira/vision2026-api/internal/config"
	"github.com/rmoreira/vision2026-api/internal/controller"
	"github.com/rmoreira/vision2026-api/internal/database"
	"github.com/rmoreira/vision2026-api/internal/handlers"
	"github.com/rmoreira/vision2026-api/internal/routes"
	"github.com/rmoreira/vision2026-api/internal/services"
	"github.com/rmoreira/vision2026-api/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	advisor := services.NewGemini(cfg.GeminiAPIKey, cfg.UploadsDir)
	ctrl, err := controller.New(store.New(db), advisor)
	if err != nil {
		log.Fatalf("Failed to initialize controller: %v", err)
	}

	// Warm the motivation text for the loaded goals.
	ctrl.RequestMotivation()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/uploads", cfg.UploadsDir)

	routes.Setup(app, handlers.New(ctrl))

	log.Printf("Vision 2026 API listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
