// Package store 提供 core.SeenStore 的内存实现，用于测试/开发/原型。
// 生产环境的跨进程去重见 ext/store/redis。
package store

import (
	"context"
	"sync"

	"github.com/rushteam/flowkit/core"
)

// MemorySeenStore 是内存实现的 SeenStore。
// 并发安全，但进程重启后数据丢失。
type MemorySeenStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

var _ core.SeenStore = (*MemorySeenStore)(nil)

func NewMemorySeenStore() *MemorySeenStore {
	return &MemorySeenStore{
		seen: make(map[string]struct{}),
	}
}

func (m *MemorySeenStore) Name() string { return "memory" }

// Add 记录 key，首次出现返回 true。检查与写入在同一临界区内完成。
func (m *MemorySeenStore) Add(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[key]; ok {
		return false, nil
	}
	m.seen[key] = struct{}{}
	return true, nil
}

func (m *MemorySeenStore) Has(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.seen[key]
	return ok, nil
}

func (m *MemorySeenStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seen = make(map[string]struct{})
	return nil
}
