// Package cache holds the Redis-backed read cache for the project list.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/b4dow/uptask-backend/models"
)

// The Redis key for the cached project list
const projectsCacheKey = "cache:projects"

const projectsCacheTTL = 30 * time.Second

// ProjectCache caches the full project list. Every method is safe on a nil
// receiver or nil client, in which case the cache is a pass-through and
// reads always go to the database.
type ProjectCache struct {
	rdb *redis.Client
}

func NewProjectCache(rdb *redis.Client) *ProjectCache {
	return &ProjectCache{rdb: rdb}
}

// Get returns the cached project list and whether it was present. Cache
// errors are logged and reported as a miss.
func (c *ProjectCache) Get(ctx context.Context) ([]models.Project, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, projectsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Error reading project cache: %v", err)
		}
		return nil, false
	}
	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		log.Printf("Error unmarshaling project cache: %v", err)
		return nil, false
	}
	return projects, true
}

// Set stores the project list with a short TTL.
func (c *ProjectCache) Set(ctx context.Context, projects []models.Project) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(projects)
	if err != nil {
		log.Printf("Error marshaling projects for cache: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, projectsCacheKey, data, projectsCacheTTL).Err(); err != nil {
		log.Printf("Error setting project cache: %v", err)
	}
}

// Invalidate drops the cached list. Called after every project write.
func (c *ProjectCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, projectsCacheKey).Err(); err != nil {
		log.Printf("Error invalidating project cache: %v", err)
	}
}
