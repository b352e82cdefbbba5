package blobstore

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "maze:"
	redisLockSuffix = ":save_lock"
	redisTimeout    = 2 * time.Second
	redisUnlockWait = 500 * time.Millisecond
)

// RedisStore keeps mazes as Redis strings with an optional TTL.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided client. A ttlSeconds
// of zero keeps keys forever.
func NewRedisStore(client *redis.Client, ttlSeconds int) i.BlobStore {
	store := &RedisStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store
}

// Put stores data under key. Concurrent writers to the same key are
// serialized with a distributed lock.
func (r *RedisStore) Put(key string, data []byte) error {
	rel, err := cleanKey(key)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	mutex := r.locker.NewMutex(redisKeyPrefix + rel + redisLockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer releaseLock(mutex)

	return r.client.Set(ctx, redisKeyPrefix+rel, data, r.ttl).Err()
}

// Get returns the data stored under key.
func (r *RedisStore) Get(key string) ([]byte, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, redisKeyPrefix+rel).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return data, err
}

// newUnlockContext is independent of the Put deadline so a slow write does
// not leave the lock held until it expires.
func newUnlockContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisUnlockWait)
}

func releaseLock(mutex *redsync.Mutex) {
	ctx, cancel := newUnlockContext()
	defer cancel()
	_, _ = mutex.UnlockContext(ctx)
}
