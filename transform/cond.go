package transform

import "github.com/rushteam/flowkit/core"

// When 条件变换：pred 成立时转发 f(v)，否则原样转发 v。
// 与 Filter 不同，所有元素都会被转发。
func When[T any](pred func(T) bool, f func(T) T) core.Transducer[T, T] {
	return Map(func(v T) T {
		if pred(v) {
			return f(v)
		}
		return v
	})
}

// Unless 是 When 的取反：pred 不成立时才应用 f。
func Unless[T any](pred func(T) bool, f func(T) T) core.Transducer[T, T] {
	return When(func(v T) bool { return !pred(v) }, f)
}

// IfElse 双分支变换：pred 成立时转发 f(v)，否则转发 g(v)。
// When(pred, f) 等价于 IfElse(pred, f, 恒等)。
func IfElse[T any](pred func(T) bool, f, g func(T) T) core.Transducer[T, T] {
	return Map(func(v T) T {
		if pred(v) {
			return f(v)
		}
		return g(v)
	})
}
