package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/b4dow/uptask-backend/models"
	"github.com/b4dow/uptask-backend/repositories"
)

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	ProjectName string
	ClientName  string
	Description string
}

// ProjectCache is the read cache for the full project list. Satisfied by
// cache.ProjectCache.
type ProjectCache interface {
	Get(ctx context.Context) ([]models.Project, bool)
	Set(ctx context.Context, projects []models.Project)
	Invalidate(ctx context.Context)
}

// ProjectService implements project CRUD. The full project list is served
// through a cache that every write invalidates.
type ProjectService struct {
	projects repositories.ProjectStore
	cache    ProjectCache
}

func NewProjectService(projects repositories.ProjectStore, cache ProjectCache) *ProjectService {
	return &ProjectService{projects: projects, cache: cache}
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	project := &models.Project{
		ID:          uuid.New(),
		ProjectName: in.ProjectName,
		ClientName:  in.ClientName,
		Description: in.Description,
		Slug:        slug.Make(in.ProjectName),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	if projects, ok := s.cache.Get(ctx); ok {
		return projects, nil
	}
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, projects)
	return projects, nil
}

// Update overwrites the project's name, client and description in place.
func (s *ProjectService) Update(ctx context.Context, project *models.Project, in ProjectInput) error {
	project.ProjectName = in.ProjectName
	project.ClientName = in.ClientName
	project.Description = in.Description
	project.Slug = slug.Make(in.ProjectName)
	if err := s.projects.Save(ctx, project); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, project *models.Project) error {
	if err := s.projects.Delete(ctx, project); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
