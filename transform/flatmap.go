package transform

import "github.com/rushteam/flowkit/core"

type flatMap[In, Out any] struct {
	f func(In) []Out
}

// FlatMap 把每个输入展开为一个有限子序列，按序逐个转发。
//
// 嵌套早停：每转发一个子元素都检查下游的 Stop 信号，收到即立刻中止，
// 丢弃尚未转发的剩余子元素，不再调用下游。
func FlatMap[In, Out any](f func(In) []Out) core.Transducer[In, Out] {
	return flatMap[In, Out]{f: f}
}

func (t flatMap[In, Out]) Apply(rf core.ReduceFn[Out]) core.ReduceFn[In] {
	return func(acc any, v In) core.Step[any] {
		for _, item := range t.f(v) {
			s := rf(acc, item)
			acc = s.Unwrap()
			if s.IsStop() {
				return core.Stop(acc)
			}
		}
		return core.Cont(acc)
	}
}
