package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/b4dow/uptask-backend/middleware"
	"github.com/b4dow/uptask-backend/services"
)

// TaskController exposes task CRUD nested under a project. The resolver
// middleware guarantees the project exists and, on :taskId routes, that
// the task references it.
type TaskController struct {
	tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

// Create handles POST /api/projects/:projectId/tasks
func (tc *TaskController) Create(c *fiber.Ctx) error {
	var req TaskRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	project := middleware.ProjectFromCtx(c)
	_, err := tc.tasks.Create(c.Context(), project, services.TaskInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendString("Task created successfully")
}

// List handles GET /api/projects/:projectId/tasks
func (tc *TaskController) List(c *fiber.Ctx) error {
	project := middleware.ProjectFromCtx(c)
	tasks, err := tc.tasks.ListByProject(c.Context(), project.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(tasks)
}

// Get handles GET /api/projects/:projectId/tasks/:taskId
func (tc *TaskController) Get(c *fiber.Ctx) error {
	return c.JSON(middleware.TaskFromCtx(c))
}

// Update handles PUT /api/projects/:projectId/tasks/:taskId
func (tc *TaskController) Update(c *fiber.Ctx) error {
	var req TaskRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	task := middleware.TaskFromCtx(c)
	err := tc.tasks.Update(c.Context(), task, services.TaskInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendString("Task updated")
}

// Delete handles DELETE /api/projects/:projectId/tasks/:taskId
func (tc *TaskController) Delete(c *fiber.Ctx) error {
	if err := tc.tasks.Delete(c.Context(), middleware.TaskFromCtx(c)); err != nil {
		return fail(c, err)
	}
	return c.SendString("Task deleted")
}

// UpdateStatus handles POST /api/projects/:projectId/tasks/:taskId/status
func (tc *TaskController) UpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	task, err := tc.tasks.UpdateStatus(c.Context(), middleware.TaskFromCtx(c), req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(task)
}
