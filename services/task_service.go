package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/b4dow/uptask-backend/models"
	"github.com/b4dow/uptask-backend/repositories"
)

// TaskInput carries the writable task fields.
type TaskInput struct {
	Name        string
	Description string
}

// TaskService implements task CRUD and status transitions, always scoped
// under an already-resolved project.
type TaskService struct {
	tasks repositories.TaskStore
}

func NewTaskService(tasks repositories.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, project *models.Project, in TaskInput) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Status:      models.StatusPending,
		ProjectID:   project.ID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	return s.tasks.FindByProject(ctx, projectID)
}

// Update overwrites the task's name and description. Status changes go
// through UpdateStatus only.
func (s *TaskService) Update(ctx context.Context, task *models.Task, in TaskInput) error {
	task.Name = in.Name
	task.Description = in.Description
	return s.tasks.Save(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, task *models.Task) error {
	return s.tasks.Delete(ctx, task)
}

// UpdateStatus sets the status to the provided value and appends an entry
// to the task's history. Any non-empty status string is accepted; there is
// no transition validation.
func (s *TaskService) UpdateStatus(ctx context.Context, task *models.Task, status string) (*models.Task, error) {
	task.Status = status
	change := &models.TaskStatusChange{
		ID:        uuid.New(),
		TaskID:    task.ID,
		Status:    status,
		CreatedAt: time.Now(),
	}

	err := settle(
		func() error { return s.tasks.Save(ctx, task) },
		func() error { return s.tasks.AppendStatusChange(ctx, change) },
	)
	if err != nil {
		return nil, err
	}

	task.StatusHistory = append(task.StatusHistory, *change)
	return task, nil
}
