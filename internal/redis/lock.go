package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis. Used to single-flight
// upstream cache refreshes across instances.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireRefreshLock attempts to acquire the refresh lock for the named
// resource. Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRefreshLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:refresh:%s", name)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRefreshLock releases the refresh lock for the named resource.
func (s *LockStore) ReleaseRefreshLock(ctx context.Context, name string) error {
	key := fmt.Sprintf("lock:refresh:%s", name)

	return s.client.Del(ctx, key).Err()
}
