package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisFacetCache caches facet summaries per normalized query key with a TTL.
type RedisFacetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFacetCache creates a new facet cache
func NewRedisFacetCache(addr, password string, db int, ttl time.Duration) *RedisFacetCache {
	return &RedisFacetCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// GetFacets returns the cached facet summary for a query key, or nil on miss.
func (c *RedisFacetCache) GetFacets(ctx context.Context, key string) (*entity.FacetSummary, error) {
	data, err := c.client.Get(ctx, facetKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var facets entity.FacetSummary
	if err := json.Unmarshal(data, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

// SetFacets stores a facet summary under a query key.
func (c *RedisFacetCache) SetFacets(ctx context.Context, key string, facets *entity.FacetSummary) error {
	payload, err := json.Marshal(facets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, facetKey(key), payload, c.ttl).Err()
}

func facetKey(key string) string {
	return fmt.Sprintf("cache:facets:%s", key)
}

var _ repository.FacetCache = (*RedisFacetCache)(nil)
