package transform

import "github.com/rushteam/flowkit/core"

type scan[T, S any] struct {
	seed S
	f    func(S, T) S
}

// Scan 维护折叠状态 state = f(state, v)，每个输入转发一次当前状态。
// 输出类型 S 可以与输入类型 T 不同（例如对事件流转发累计统计）。
//
// 累积律：ToSlice(Scan(seed, f), S)[i] == fold(f, seed, S[0..=i])。
func Scan[T, S any](seed S, f func(S, T) S) core.Transducer[T, S] {
	return scan[T, S]{seed: seed, f: f}
}

func (t scan[T, S]) Apply(rf core.ReduceFn[S]) core.ReduceFn[T] {
	state := t.seed
	return func(acc any, v T) core.Step[any] {
		state = t.f(state, v)
		return rf(acc, state)
	}
}
