package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/b4dow/uptask-backend/cache"
	"github.com/b4dow/uptask-backend/config"
	"github.com/b4dow/uptask-backend/controllers"
	"github.com/b4dow/uptask-backend/database"
	"github.com/b4dow/uptask-backend/email"
	"github.com/b4dow/uptask-backend/middleware"
	"github.com/b4dow/uptask-backend/repositories"
	"github.com/b4dow/uptask-backend/routes"
	"github.com/b4dow/uptask-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb := database.ConnectRedis(cfg)

	users := repositories.NewUserStore(db)
	tokens := repositories.NewTokenStore(db, cfg.TokenTTL)
	projects := repositories.NewProjectStore(db)
	tasks := repositories.NewTaskStore(db)

	mailer := email.NewMailer(cfg)

	authService := services.NewAuthService(users, tokens, mailer)
	projectService := services.NewProjectService(projects, cache.NewProjectCache(rdb))
	taskService := services.NewTaskService(tasks)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
	}))

	routes.Setup(
		app,
		controllers.NewAuthController(authService),
		controllers.NewProjectController(projectService),
		controllers.NewTaskController(taskService),
		middleware.NewResolver(projects, tasks),
	)

	log.Fatal(app.Listen(":" + cfg.Port))
}
