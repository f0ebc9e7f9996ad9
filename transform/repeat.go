package transform

import "github.com/rushteam/flowkit/core"

type repeatEach[T any] struct {
	n int
}

// RepeatEach 把每个元素连续转发 n 次；n = 0 时吸收全部元素。
// 每次转发之间检查下游的 Stop 信号，收到即中止剩余重复。
func RepeatEach[T any](n int) core.Transducer[T, T] {
	return repeatEach[T]{n: n}
}

func (t repeatEach[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	return func(acc any, v T) core.Step[any] {
		for i := 0; i < t.n; i++ {
			s := rf(acc, v)
			acc = s.Unwrap()
			if s.IsStop() {
				return core.Stop(acc)
			}
		}
		return core.Cont(acc)
	}
}
