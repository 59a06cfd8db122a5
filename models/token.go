package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token is a single-use numeric code bound to a user, consumed during
// account confirmation or password reset. Codes past their validity window
// are treated as absent by the store.
//
// UserID is an unenforced reference: user and token rows are written
// concurrently on registration, so a DB-level foreign key would race the
// parent insert.
type Token struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code      string    `json:"token" gorm:"type:varchar(6);uniqueIndex;not null"`
	UserID    uuid.UUID `json:"user" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
