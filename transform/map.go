package transform

import "github.com/rushteam/flowkit/core"

type mapT[In, Out any] struct {
	f func(In) Out
}

// Map 对每个元素应用 f 后转发。纯变换，不改变控制流。
//
// 融合律由通用组合机制自然给出（无特殊化）：
//
//	Compose(Map(f), Map(g)) ≡ Map(g ∘ f)
func Map[In, Out any](f func(In) Out) core.Transducer[In, Out] {
	return mapT[In, Out]{f: f}
}

func (t mapT[In, Out]) Apply(rf core.ReduceFn[Out]) core.ReduceFn[In] {
	return func(acc any, v In) core.Step[any] {
		return rf(acc, t.f(v))
	}
}
