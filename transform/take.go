package transform

import "github.com/rushteam/flowkit/core"

type take[T any] struct {
	n int
}

// Take 转发前 n 个元素，并在第 n 次转发时同步发出 Stop。
// n <= 0 时不转发任何元素，首个元素到达即 Stop。
//
// 早停保证：上游不会在 Stop 之后再被驱动——与源长度无关，
// 对 1..1e6 的源 Take(3) 只消费 3 个元素。
func Take[T any](n int) core.Transducer[T, T] {
	return take[T]{n: n}
}

func (t take[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	taken := 0
	return func(acc any, v T) core.Step[any] {
		if taken >= t.n {
			// n=0 或驱动函数被越界复用时到达：不转发，直接停
			return core.Stop(acc)
		}
		taken++
		s := rf(acc, v)
		if taken >= t.n {
			// 第 n 次转发：无论下游说什么，一律升格为 Stop
			return core.Stop(s.Unwrap())
		}
		return s
	}
}

type takeWhile[T any] struct {
	pred func(T) bool
}

// TakeWhile 在 pred 连续成立期间转发；首个不满足的元素不被转发，
// 并立即发出 Stop。
func TakeWhile[T any](pred func(T) bool) core.Transducer[T, T] {
	return takeWhile[T]{pred: pred}
}

func (t takeWhile[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	return func(acc any, v T) core.Step[any] {
		if t.pred(v) {
			return rf(acc, v)
		}
		return core.Stop(acc)
	}
}
