package transform

import (
	"context"

	"github.com/rushteam/flowkit/core"
)

type unique[T comparable] struct{}

// Unique 仅做相邻去重：元素与上一个被转发的值不同才转发，首个元素必转发。
// 与 UniqueBy 的全局去重是有意的不对称，两者分别保留。
func Unique[T comparable]() core.Transducer[T, T] {
	return unique[T]{}
}

func (unique[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	var last T
	seen := false
	return func(acc any, v T) core.Step[any] {
		if seen && v == last {
			return core.Cont(acc)
		}
		last, seen = v, true
		return rf(acc, v)
	}
}

type uniqueBy[T any, K comparable] struct {
	key func(T) K
}

// UniqueBy 按 key(v) 做全局去重：每个 key 只有首次出现的元素被转发，
// 与出现位置无关。key 必须是 comparable。
func UniqueBy[T any, K comparable](key func(T) K) core.Transducer[T, T] {
	return uniqueBy[T, K]{key: key}
}

func (t uniqueBy[T, K]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	seen := make(map[K]struct{})
	return func(acc any, v T) core.Step[any] {
		k := t.key(v)
		if _, ok := seen[k]; ok {
			return core.Cont(acc)
		}
		seen[k] = struct{}{}
		return rf(acc, v)
	}
}

type uniqueByStore[T any] struct {
	ctx   context.Context
	key   func(T) string
	store core.SeenStore
}

// UniqueByStore 按 key(v) 做跨驱动/跨进程的共享去重：seen 集合放在外部
// SeenStore（内存或 Redis）里，而不是驱动私有状态中。
//
// 与 UniqueBy 的差异：
//   - 状态共享：多条流水线可以用同一个 store 互相去重
//   - 中性失败：store 出错时把该元素当作首次出现放行，错误不进入引擎
func UniqueByStore[T any](ctx context.Context, key func(T) string, store core.SeenStore) core.Transducer[T, T] {
	return uniqueByStore[T]{ctx: ctx, key: key, store: store}
}

func (t uniqueByStore[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	return func(acc any, v T) core.Step[any] {
		first, err := t.store.Add(t.ctx, t.key(v))
		if err != nil {
			// 后端不可用时放行：去重退化，数据不丢
			return rf(acc, v)
		}
		if !first {
			return core.Cont(acc)
		}
		return rf(acc, v)
	}
}
