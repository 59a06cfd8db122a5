package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conventional task statuses. The status field is an open string: any
// non-empty value is accepted and recorded in the history.
const (
	StatusPending     = "pending"
	StatusOnHold      = "onHold"
	StatusInProgress  = "inProgress"
	StatusUnderReview = "underReview"
	StatusCompleted   = "completed"
)

// Task belongs to exactly one project. A task may only be addressed through
// the project it references.
type Task struct {
	ID            uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string             `json:"name" gorm:"not null"`
	Description   string             `json:"description" gorm:"not null"`
	Status        string             `json:"status" gorm:"not null;default:'pending'"`
	ProjectID     uuid.UUID          `json:"project" gorm:"type:uuid;not null;index"`
	StatusHistory []TaskStatusChange `json:"statusHistory" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskStatusChange is one append-only entry in a task's status history.
type TaskStatusChange struct {
	ID        uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Status    string    `json:"status" gorm:"not null"`
	CreatedAt time.Time `json:"timestamp"`
}

func (c *TaskStatusChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
