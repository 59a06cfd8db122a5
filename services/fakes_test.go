package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/email"
	"github.com/b4dow/uptask-backend/models"
)

// In-memory store fakes. Absent records return gorm.ErrRecordNotFound like
// the real stores.

func newTestID() uuid.UUID { return uuid.New() }

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// fakeTokenStore mirrors the real store's lookup contract: with a ttl set,
// codes older than the window behave as absent.
type fakeTokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]models.Token
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]models.Token)}
}

func (s *fakeTokenStore) Create(ctx context.Context, token *models.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	s.tokens[token.Code] = *token
	return nil
}

func (s *fakeTokenStore) FindByCode(ctx context.Context, code string) (*models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if s.ttl > 0 && t.CreatedAt.Before(time.Now().Add(-s.ttl)) {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s *fakeTokenStore) Delete(ctx context.Context, token *models.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token.Code)
	return nil
}

func (s *fakeTokenStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *fakeTokenStore) codes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var codes []string
	for code := range s.tokens {
		codes = append(codes, code)
	}
	return codes
}

type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]models.Project)}
}

func (s *fakeProjectStore) Create(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = *project
	return nil
}

func (s *fakeProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *fakeProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (s *fakeProjectStore) Save(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = *project
	return nil
}

func (s *fakeProjectStore) Delete(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, project.ID)
	return nil
}

type fakeTaskStore struct {
	mu      sync.Mutex
	tasks   map[uuid.UUID]models.Task
	changes []models.TaskStatusChange
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]models.Task)}
}

func (s *fakeTaskStore) Create(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

func (s *fakeTaskStore) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *fakeTaskStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s *fakeTaskStore) Save(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

func (s *fakeTaskStore) Delete(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, task.ID)
	return nil
}

func (s *fakeTaskStore) AppendStatusChange(ctx context.Context, change *models.TaskStatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes = append(s.changes, *change)
	return nil
}

type fakeMailer struct {
	mu            sync.Mutex
	confirmations []email.Payload
	resets        []email.Payload
}

func (m *fakeMailer) SendConfirmation(ctx context.Context, p email.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations = append(m.confirmations, p)
	return nil
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, p email.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, p)
	return nil
}

func (m *fakeMailer) confirmationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.confirmations)
}

func (m *fakeMailer) resetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resets)
}

func (m *fakeMailer) lastConfirmation() email.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmations[len(m.confirmations)-1]
}

func (m *fakeMailer) lastReset() email.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets[len(m.resets)-1]
}
