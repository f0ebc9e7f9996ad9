package transform

import "github.com/rushteam/flowkit/core"

type interpose[T any] struct {
	sep T
}

// Interpose 在相邻元素之间插入分隔符 sep：首个元素直接转发，
// 之后每个元素先转发一次 sep 再转发元素本身。
// 分隔符也可能触发下游早停，此时元素本身不再转发。
func Interpose[T any](sep T) core.Transducer[T, T] {
	return interpose[T]{sep: sep}
}

func (t interpose[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	first := true
	return func(acc any, v T) core.Step[any] {
		if first {
			first = false
			return rf(acc, v)
		}
		s := rf(acc, t.sep)
		if s.IsStop() {
			return s
		}
		return rf(s.Unwrap(), v)
	}
}
