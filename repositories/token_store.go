package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/models"
)

// TokenStore persists single-use confirmation and reset codes. Lookup
// ignores codes older than the validity window, which preserves the
// expiry-by-deletion contract of the original TTL index.
type TokenStore interface {
	Create(ctx context.Context, token *models.Token) error
	FindByCode(ctx context.Context, code string) (*models.Token, error)
	Delete(ctx context.Context, token *models.Token) error
}

type GormTokenStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewTokenStore(db *gorm.DB, ttl time.Duration) *GormTokenStore {
	return &GormTokenStore{db: db, ttl: ttl}
}

func (s *GormTokenStore) Create(ctx context.Context, token *models.Token) error {
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) FindByCode(ctx context.Context, code string) (*models.Token, error) {
	var token models.Token
	q := s.db.WithContext(ctx).Where("code = ?", code)
	if s.ttl > 0 {
		q = q.Where("created_at > ?", time.Now().Add(-s.ttl))
	}
	if err := q.First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *GormTokenStore) Delete(ctx context.Context, token *models.Token) error {
	return s.db.WithContext(ctx).Delete(token).Error
}
