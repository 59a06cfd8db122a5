package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project groups the tasks done for a single client.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectName string    `json:"projectName" gorm:"not null"`
	ClientName  string    `json:"clientName" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"index"`
	Tasks       []Task    `json:"tasks" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
