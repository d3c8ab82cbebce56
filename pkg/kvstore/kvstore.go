// Package kvstore stores whole collections as single JSON values under string
// keys. It backs the redis and memory storage drivers.
package kvstore

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"FinanceTracker/pkg/redis"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Store interface {
	// Get decodes the value under key into dest and reports whether it existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// LatencyFromEnv reads STORAGE_LATENCY_MS; zero when unset or invalid.
func LatencyFromEnv() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("STORAGE_LATENCY_MS"))
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type memoryStore struct {
	mu      sync.RWMutex
	data    map[string][]byte
	latency time.Duration
}

func NewMemory(latency time.Duration) Store {
	return &memoryStore{
		data:    make(map[string][]byte),
		latency: latency,
	}
}

func (m *memoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if err := wait(ctx, m.latency); err != nil {
		return false, err
	}

	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(raw, dest)
}

func (m *memoryStore) Set(ctx context.Context, key string, value interface{}) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

type redisStore struct {
	client  redis.IRedis
	latency time.Duration
}

func NewRedis(client redis.IRedis, latency time.Duration) Store {
	return &redisStore{
		client:  client,
		latency: latency,
	}
}

func (r *redisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if err := wait(ctx, r.latency); err != nil {
		return false, err
	}

	raw, err := r.client.Get(ctx, key)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, json.UnmarshalFromString(raw, dest)
}

func (r *redisStore) Set(ctx context.Context, key string, value interface{}) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}

	raw, err := json.MarshalToString(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, raw, 0)
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}

	return r.client.Delete(ctx, key)
}
