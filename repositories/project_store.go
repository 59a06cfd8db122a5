package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/models"
)

// ProjectStore persists projects. FindByID loads the project's tasks along
// with it, since a project is always served with its task list.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Save(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, project *models.Project) error
}

type GormProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *GormProjectStore {
	return &GormProjectStore{db: db}
}

func (s *GormProjectStore) Create(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Create(project).Error
}

func (s *GormProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.WithContext(ctx).Preload("Tasks").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).Preload("Tasks").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *GormProjectStore) Save(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Omit("Tasks").Save(project).Error
}

func (s *GormProjectStore) Delete(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Delete(project).Error
}
