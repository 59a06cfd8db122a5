package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/b4dow/uptask-backend/controllers"
	"github.com/b4dow/uptask-backend/middleware"
)

// Setup registers the two resource groups on the app.
func Setup(
	app *fiber.App,
	auth *controllers.AuthController,
	projects *controllers.ProjectController,
	tasks *controllers.TaskController,
	resolve *middleware.Resolver,
) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/create-account", auth.CreateAccount)
	authGroup.Post("/confirm-account", auth.ConfirmAccount)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/request-code", auth.RequestCode)
	authGroup.Post("/forgot-password", auth.ForgotPassword)
	authGroup.Post("/validate-token", auth.ValidateToken)
	authGroup.Post("/update-password/:token", auth.UpdatePassword)

	projectGroup := app.Group("/api/projects")
	projectGroup.Post("/", projects.Create)
	projectGroup.Get("/", projects.List)
	projectGroup.Get("/:projectId", resolve.ProjectExists, projects.Get)
	projectGroup.Put("/:projectId", resolve.ProjectExists, projects.Update)
	projectGroup.Delete("/:projectId", resolve.ProjectExists, projects.Delete)

	taskGroup := projectGroup.Group("/:projectId/tasks", resolve.ProjectExists)
	taskGroup.Post("/", tasks.Create)
	taskGroup.Get("/", tasks.List)
	taskGroup.Get("/:taskId", resolve.TaskExists, resolve.TaskBelongsToProject, tasks.Get)
	taskGroup.Put("/:taskId", resolve.TaskExists, resolve.TaskBelongsToProject, tasks.Update)
	taskGroup.Delete("/:taskId", resolve.TaskExists, resolve.TaskBelongsToProject, tasks.Delete)
	taskGroup.Post("/:taskId/status", resolve.TaskExists, resolve.TaskBelongsToProject, tasks.UpdateStatus)
}
