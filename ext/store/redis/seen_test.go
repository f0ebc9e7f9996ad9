package redis

import (
	"context"
	"testing"
)

func TestSeenStore(t *testing.T) {
	t.Skip("需要连接真实的 Redis 才能运行")

	store, err := NewSeenStore("localhost:6379", 0, "flowkit:test:seen")
	if err != nil {
		t.Fatalf("NewSeenStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	first, err := store.Add(ctx, "item:1")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !first {
		t.Error("首次 Add 应返回 true")
	}

	again, err := store.Add(ctx, "item:1")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if again {
		t.Error("重复 Add 应返回 false")
	}

	has, err := store.Has(ctx, "item:1")
	if err != nil {
		t.Fatalf("Has() error = %v", err)
	}
	if !has {
		t.Error("Has 应返回 true")
	}
}
