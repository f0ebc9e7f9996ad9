package transform

import "github.com/rushteam/flowkit/core"

type tap[T any] struct {
	f func(T)
}

// Tap 对每个元素调用 f 产生副作用，元素原样转发。
// 不改变值，也不改变控制流；常用于打点/调试。
func Tap[T any](f func(T)) core.Transducer[T, T] {
	return tap[T]{f: f}
}

func (t tap[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	return func(acc any, v T) core.Step[any] {
		t.f(v)
		return rf(acc, v)
	}
}
