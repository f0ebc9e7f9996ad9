package collect

import (
	"iter"

	"github.com/rushteam/flowkit/core"
)

// Reduce 是通用驱动器：用 t 变换 rf 后，对源做单趟顺序遍历。
// 有效归约函数发出 Stop 的那一刻即停止拉取源——下一个源元素不会被消费。
//
// 每次调用都通过 t.Apply 构建一个全新的驱动函数（含全新的内部状态），
// 因此同一个 Transducer 可以安全地跨多次 Reduce 复用。
func Reduce[In, Out, A any](t core.Transducer[In, Out], src iter.Seq[In], seed A, rf core.Reducer[A, Out]) A {
	step := t.Apply(core.Erase(rf))
	var acc any = seed
	for v := range src {
		s := step(acc, v)
		acc = s.Unwrap()
		if s.IsStop() {
			break
		}
	}
	// A = any 时 nil 累加器合法，回程同样不做硬断言
	out, _ := acc.(A)
	return out
}

// ToSlice 按转发顺序把输出收集进切片；Stop 时保留停止步携带的累加器。
func ToSlice[In, Out any](t core.Transducer[In, Out], src iter.Seq[In]) []Out {
	return Reduce(t, src, []Out(nil), func(acc []Out, v Out) core.Step[[]Out] {
		return core.Cont(append(acc, v))
	})
}

// Range 生成 [lo, hi) 的整数序列，常用作驱动源。
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
