package main

import (
	"time"

	"styledecor/cache"
	"styledecor/config"
	"styledecor/database"
	"styledecor/database/seeders"
	"styledecor/logger"
	"styledecor/metrics"
	"styledecor/routes"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       50 * 1024 * 1024, // 50MB body limit
	})

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: " + err.Error())
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to the database: " + err.Error())
	}

	if err := seeders.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("Failed to seed admin account", err)
	}
	if err := seeders.SeedServices(db); err != nil {
		logger.Error("Failed to seed service catalog", err)
	}

	catalogCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warning("Redis unavailable, catalog caching disabled: " + err.Error())
		catalogCache = nil
	}
	defer catalogCache.Close()

	metrics.Register()
	app.Use(metrics.Middleware())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.SetupRoutes(app, db, cfg, catalogCache)

	logger.Success("Server is running on ip: " + cfg.AppHost + " port: " + cfg.AppPort +
		"\n\t\t\t\t\t\t******************************************************************************************\n")

	if err := app.Listen(cfg.AppHost + ":" + cfg.AppPort); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
