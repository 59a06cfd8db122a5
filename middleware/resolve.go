// Package middleware resolves path-addressed resources before the handler
// runs: the project and task referenced by the URL are loaded once and
// attached to the request as typed values.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/models"
	"github.com/b4dow/uptask-backend/repositories"
)

const (
	projectKey = "project"
	taskKey    = "task"
)

type Resolver struct {
	projects repositories.ProjectStore
	tasks    repositories.TaskStore
}

func NewResolver(projects repositories.ProjectStore, tasks repositories.TaskStore) *Resolver {
	return &Resolver{projects: projects, tasks: tasks}
}

// ProjectExists loads the project named by :projectId, failing the request
// with 400 on a malformed id and 404 when the project is absent.
func (r *Resolver) ProjectExists(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Project id is not valid"})
	}

	project, err := r.projects.FindByID(c.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "There was an error"})
	}

	c.Locals(projectKey, project)
	return c.Next()
}

// TaskExists loads the task named by :taskId. Runs after ProjectExists.
func (r *Resolver) TaskExists(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Task id is not valid"})
	}

	task, err := r.tasks.FindByID(c.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "There was an error"})
	}

	c.Locals(taskKey, task)
	return c.Next()
}

// TaskBelongsToProject rejects requests that address a task through a
// project it does not reference. The task is never returned on mismatch.
func (r *Resolver) TaskBelongsToProject(c *fiber.Ctx) error {
	project := ProjectFromCtx(c)
	task := TaskFromCtx(c)
	if project == nil || task == nil || task.ProjectID != project.ID {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
	return c.Next()
}

// ProjectFromCtx returns the project resolved by ProjectExists.
func ProjectFromCtx(c *fiber.Ctx) *models.Project {
	project, _ := c.Locals(projectKey).(*models.Project)
	return project
}

// TaskFromCtx returns the task resolved by TaskExists.
func TaskFromCtx(c *fiber.Ctx) *models.Task {
	task, _ := c.Locals(taskKey).(*models.Task)
	return task
}
