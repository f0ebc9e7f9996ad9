package transform

import "github.com/rushteam/flowkit/core"

type filter[T any] struct {
	pred func(T) bool
}

// Filter 仅转发满足 pred 的元素。
// 被拒绝的元素以 Continue(acc) 吸收——拒绝不是停止。
//
// 融合律：Compose(Filter(p), Filter(q)) ≡ Filter(x => p(x) && q(x))。
func Filter[T any](pred func(T) bool) core.Transducer[T, T] {
	return filter[T]{pred: pred}
}

func (t filter[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	return func(acc any, v T) core.Step[any] {
		if t.pred(v) {
			return rf(acc, v)
		}
		return core.Cont(acc)
	}
}

// Reject 是 Filter 的取反：仅转发不满足 pred 的元素。
// 写排除逻辑时比 Filter(x => !p(x)) 更直观。
func Reject[T any](pred func(T) bool) core.Transducer[T, T] {
	return Filter(func(v T) bool { return !pred(v) })
}
