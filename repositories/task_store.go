package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/models"
)

// TaskStore persists tasks and their append-only status history.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
	AppendStatusChange(ctx context.Context, change *models.TaskStatusChange) error
}

type GormTaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

func (s *GormTaskStore) Create(ctx context.Context, task *models.Task) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *GormTaskStore) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.WithContext(ctx).
		Preload("StatusHistory").
		Where("project_id = ?", projectID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormTaskStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).Preload("StatusHistory").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *GormTaskStore) Save(ctx context.Context, task *models.Task) error {
	return s.db.WithContext(ctx).Omit("StatusHistory").Save(task).Error
}

func (s *GormTaskStore) Delete(ctx context.Context, task *models.Task) error {
	return s.db.WithContext(ctx).Delete(task).Error
}

func (s *GormTaskStore) AppendStatusChange(ctx context.Context, change *models.TaskStatusChange) error {
	return s.db.WithContext(ctx).Create(change).Error
}
