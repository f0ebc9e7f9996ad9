package transform

import "github.com/rushteam/flowkit/core"

type drop[T any] struct {
	n int
}

// Drop 吸收前 n 个元素（Continue，不转发），之后全部转发。从不早停。
func Drop[T any](n int) core.Transducer[T, T] {
	return drop[T]{n: n}
}

func (t drop[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	dropped := 0
	return func(acc any, v T) core.Step[any] {
		if dropped < t.n {
			dropped++
			return core.Cont(acc)
		}
		return rf(acc, v)
	}
}

type dropWhile[T any] struct {
	pred func(T) bool
}

// DropWhile 在 pred 连续成立期间吸收元素；一旦某个元素不满足 pred，
// 闸门永久打开，之后的元素无条件转发。
//
// 单向闸门：打开后绝不因为后续元素再次满足 pred 而重新吸收。
func DropWhile[T any](pred func(T) bool) core.Transducer[T, T] {
	return dropWhile[T]{pred: pred}
}

func (t dropWhile[T]) Apply(rf core.ReduceFn[T]) core.ReduceFn[T] {
	dropping := true
	return func(acc any, v T) core.Step[any] {
		if dropping && t.pred(v) {
			return core.Cont(acc)
		}
		dropping = false
		return rf(acc, v)
	}
}
