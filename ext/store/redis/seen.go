// Package redis 提供基于 Redis SET 的 core.SeenStore 实现，
// 用于跨进程、跨批次的流式去重（UniqueByStore）。
//
// 使用方式：
//
//	store, err := redis.NewSeenStore("localhost:6379", 0, "dedup:events")
//	if err != nil { ... }
//	defer store.Close()
//	op := transform.UniqueByStore(ctx, keyFn, store)
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/flowkit/core"
)

// SeenStore 用一个 Redis SET 记录已见 key。
// Add 走 SADD，检查与写入在 Redis 端原子完成，天然并发安全。
type SeenStore struct {
	client *redis.Client
	setKey string
}

var _ core.SeenStore = (*SeenStore)(nil)

// NewSeenStore 连接 Redis 并做一次 Ping 探活。
// setKey 是承载去重集合的 Redis key。
func NewSeenStore(addr string, db int, setKey string) (*SeenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SeenStore{client: client, setKey: setKey}, nil
}

// NewSeenStoreWithClient 使用已有 *redis.Client 创建（高级用法）。
// Close 同样会关闭传入的 client。
func NewSeenStoreWithClient(client *redis.Client, setKey string) *SeenStore {
	return &SeenStore{client: client, setKey: setKey}
}

func (s *SeenStore) Name() string { return "redis" }

// Add 将 key 写入集合，首次写入返回 true。
func (s *SeenStore) Add(ctx context.Context, key string) (bool, error) {
	added, err := s.client.SAdd(ctx, s.setKey, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to sadd: %w", err)
	}
	return added > 0, nil
}

func (s *SeenStore) Has(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.setKey, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to sismember: %w", err)
	}
	return ok, nil
}

// Expire 给去重集合设置过期时间，用于按天/按周滚动的去重窗口。
func (s *SeenStore) Expire(ctx context.Context, ttl time.Duration) error {
	return s.client.Expire(ctx, s.setKey, ttl).Err()
}

func (s *SeenStore) Close() error {
	return s.client.Close()
}

// GetClient 返回底层 *redis.Client（高级用法）。
func (s *SeenStore) GetClient() *redis.Client {
	return s.client
}
