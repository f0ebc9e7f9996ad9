package collect

import (
	"cmp"
	"iter"

	"github.com/rushteam/flowkit/core"
)

// Max 返回最大输出；空输出返回 (零值, false)。
func Max[In any, Out cmp.Ordered](t core.Transducer[In, Out], src iter.Seq[In]) (Out, bool) {
	r := Reduce(t, src, opt[Out]{}, func(acc opt[Out], v Out) core.Step[opt[Out]] {
		if !acc.ok || v > acc.v {
			return core.Cont(opt[Out]{v: v, ok: true})
		}
		return core.Cont(acc)
	})
	return r.v, r.ok
}

// Min 返回最小输出；空输出返回 (零值, false)。
func Min[In any, Out cmp.Ordered](t core.Transducer[In, Out], src iter.Seq[In]) (Out, bool) {
	r := Reduce(t, src, opt[Out]{}, func(acc opt[Out], v Out) core.Step[opt[Out]] {
		if !acc.ok || v < acc.v {
			return core.Cont(opt[Out]{v: v, ok: true})
		}
		return core.Cont(acc)
	})
	return r.v, r.ok
}

// MaxBy 按 score 返回得分最高的输出；并列时保留先出现者。
func MaxBy[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], score func(Out) float64) (Out, bool) {
	type best struct {
		v  Out
		s  float64
		ok bool
	}
	r := Reduce(t, src, best{}, func(acc best, v Out) core.Step[best] {
		if s := score(v); !acc.ok || s > acc.s {
			return core.Cont(best{v: v, s: s, ok: true})
		}
		return core.Cont(acc)
	})
	return r.v, r.ok
}

// MinBy 按 score 返回得分最低的输出；并列时保留先出现者。
func MinBy[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], score func(Out) float64) (Out, bool) {
	return MaxBy(t, src, func(v Out) float64 { return -score(v) })
}

// Mean 返回输出的算术平均值；空输出返回 (0, false)。
func Mean[In any, N Number](t core.Transducer[In, N], src iter.Seq[In]) (float64, bool) {
	type sum struct {
		total float64
		n     int
	}
	r := Reduce(t, src, sum{}, func(acc sum, v N) core.Step[sum] {
		return core.Cont(sum{total: acc.total + float64(v), n: acc.n + 1})
	})
	if r.n == 0 {
		return 0, false
	}
	return r.total / float64(r.n), true
}
