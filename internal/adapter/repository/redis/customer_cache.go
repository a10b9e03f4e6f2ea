package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

const (
	customerKeyPrefix = "customer:"
	cachedTrue        = "1"
	cachedFalse       = "0"
)

// ExistenceStore answers whether a customer has a balance record in the
// primary store.
type ExistenceStore interface {
	Exists(ctx context.Context, customerID string) (bool, error)
}

// CustomerCache implements usecase.CustomerCache as a read-through cache over
// the balance store. Entries never expire: customer provisioning is
// out-of-band and records are never deleted, so a cached answer stays correct
// until tooling calls Invalidate.
type CustomerCache struct {
	client  *redis.Client
	store   ExistenceStore
	metrics *metrics.Metrics
}

// NewCustomerCache creates a new CustomerCache.
func NewCustomerCache(client *redis.Client, store ExistenceStore, m *metrics.Metrics) *CustomerCache {
	return &CustomerCache{
		client:  client,
		store:   store,
		metrics: m,
	}
}

// Exists reports whether customerID has a balance record, consulting the
// store only on a cache miss. Both positive and negative answers are cached.
func (c *CustomerCache) Exists(ctx context.Context, customerID string) (bool, error) {
	val, err := c.client.Get(ctx, customerKeyPrefix+customerID).Result()
	if err == nil {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}

		return val == cachedTrue, nil
	}

	if !errors.Is(err, redis.Nil) {
		return false, err
	}

	if c.metrics != nil {
		c.metrics.CacheMisses.Inc()
	}

	log.Debug().
		Str("customer_id", customerID).
		Msg("customer existence cache miss, querying store")

	exists, err := c.store.Exists(ctx, customerID)
	if err != nil {
		return false, err
	}

	cached := cachedFalse
	if exists {
		cached = cachedTrue
	}

	if err := c.client.Set(ctx, customerKeyPrefix+customerID, cached, 0).Err(); err != nil {
		return false, err
	}

	return exists, nil
}

// Invalidate drops the cached answer for customerID.
func (c *CustomerCache) Invalidate(ctx context.Context, customerID string) error {
	return c.client.Del(ctx, customerKeyPrefix+customerID).Err()
}
