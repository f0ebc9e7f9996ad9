package collect

import (
	"iter"

	"github.com/rushteam/flowkit/core"
)

// Every 判断是否所有输出都满足 pred：首个不满足的元素触发 Stop(false)。
func Every[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], pred func(Out) bool) bool {
	return Reduce(t, src, true, func(_ bool, v Out) core.Step[bool] {
		if pred(v) {
			return core.Cont(true)
		}
		return core.Stop(false)
	})
}

// Some 判断是否存在满足 pred 的输出：首个命中触发 Stop(true)。
func Some[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], pred func(Out) bool) bool {
	return Reduce(t, src, false, func(_ bool, v Out) core.Step[bool] {
		if pred(v) {
			return core.Stop(true)
		}
		return core.Cont(false)
	})
}

// None 是 Some 的取反：首个命中即停，无命中返回 true。
func None[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], pred func(Out) bool) bool {
	return !Some(t, src, pred)
}

// Contains 判断输出中是否出现 target，首个相等即早停。
func Contains[In any, Out comparable](t core.Transducer[In, Out], src iter.Seq[In], target Out) bool {
	return Some(t, src, func(v Out) bool { return v == target })
}

// Find 返回首个满足 pred 的输出。
func Find[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], pred func(Out) bool) (Out, bool) {
	r := Reduce(t, src, opt[Out]{}, func(acc opt[Out], v Out) core.Step[opt[Out]] {
		if pred(v) {
			return core.Stop(opt[Out]{v: v, ok: true})
		}
		return core.Cont(acc)
	})
	return r.v, r.ok
}
