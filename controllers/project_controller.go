package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/b4dow/uptask-backend/middleware"
	"github.com/b4dow/uptask-backend/services"
)

// ProjectController exposes project CRUD under /api/projects. Routes with
// a :projectId run behind the resolver middleware, so handlers read the
// already-loaded project from the request.
type ProjectController struct {
	projects *services.ProjectService
}

func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// Create handles POST /api/projects
func (pc *ProjectController) Create(c *fiber.Ctx) error {
	var req ProjectRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	_, err := pc.projects.Create(c.Context(), services.ProjectInput{
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendString("Project created")
}

// List handles GET /api/projects
func (pc *ProjectController) List(c *fiber.Ctx) error {
	projects, err := pc.projects.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(projects)
}

// Get handles GET /api/projects/:projectId
func (pc *ProjectController) Get(c *fiber.Ctx) error {
	return c.JSON(middleware.ProjectFromCtx(c))
}

// Update handles PUT /api/projects/:projectId
func (pc *ProjectController) Update(c *fiber.Ctx) error {
	var req ProjectRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	project := middleware.ProjectFromCtx(c)
	err := pc.projects.Update(c.Context(), project, services.ProjectInput{
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendString("Project updated")
}

// Delete handles DELETE /api/projects/:projectId
func (pc *ProjectController) Delete(c *fiber.Ctx) error {
	if err := pc.projects.Delete(c.Context(), middleware.ProjectFromCtx(c)); err != nil {
		return fail(c, err)
	}
	return c.SendString("Project deleted")
}
