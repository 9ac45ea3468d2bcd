package main

import (
	_ "Backend-EaseForm/docs"
	"Backend-EaseForm/src/config"
	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/jobs"
	"Backend-EaseForm/src/routes"
	"Backend-EaseForm/src/seeder"
	"Backend-EaseForm/src/utils"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {
	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWTSecret)

	if err := database.ConnectMongoDB(cfg); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" && !cfg.IsProduction() {
		if err := seeder.SeedSampleData(context.Background()); err != nil {
			log.Printf("⚠️ Seeding sample data failed: %v", err)
		}
	}

	// Redis and the background worker are optional.
	database.InitRedis(cfg)
	database.InitAsynq()
	go jobs.StartWorker(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // must stay false with "*"
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoints.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "EaseForm API",
			"version": "1.0.0",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"environment": cfg.Environment,
		})
	})

	routes.InitRoutes(app, cfg)

	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
