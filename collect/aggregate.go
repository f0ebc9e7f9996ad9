package collect

import (
	"iter"

	"github.com/rushteam/flowkit/core"
)

// Number 是可求和的数值约束。
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum 对输出求和，seed 为加法零值。
func Sum[In any, N Number](t core.Transducer[In, N], src iter.Seq[In]) N {
	var zero N
	return Reduce(t, src, zero, func(acc N, v N) core.Step[N] {
		return core.Cont(acc + v)
	})
}

// Count 统计输出个数，忽略值本身。
func Count[In, Out any](t core.Transducer[In, Out], src iter.Seq[In]) int {
	return Reduce(t, src, 0, func(acc int, _ Out) core.Step[int] {
		return core.Cont(acc + 1)
	})
}

type opt[T any] struct {
	v  T
	ok bool
}

// First 返回首个输出并立即早停：最多把源推进到链路自身停止点之后一个元素。
func First[In, Out any](t core.Transducer[In, Out], src iter.Seq[In]) (Out, bool) {
	r := Reduce(t, src, opt[Out]{}, func(_ opt[Out], v Out) core.Step[opt[Out]] {
		return core.Stop(opt[Out]{v: v, ok: true})
	})
	return r.v, r.ok
}

// Last 返回最后一个输出：始终 Continue 并覆盖，靠源自然耗尽终止。
func Last[In, Out any](t core.Transducer[In, Out], src iter.Seq[In]) (Out, bool) {
	r := Reduce(t, src, opt[Out]{}, func(_ opt[Out], v Out) core.Step[opt[Out]] {
		return core.Cont(opt[Out]{v: v, ok: true})
	})
	return r.v, r.ok
}
