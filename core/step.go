package core

import "fmt"

type stepTag uint8

const (
	tagContinue stepTag = iota
	tagStop
)

// Step 是归约过程中每一步的返回值：携带下一个累加器，并用标签表达
// “继续 / 停止”两种控制信号。
//
// 设计原则：
//   - 标签是纯粹的控制信号，不表达错误（闭包的失败按 panic 原样向上传播）
//   - 恰好携带一个载荷，Unwrap 不区分标签
//   - Stop 是整条链路里唯一的取消通道：自下游向上游同步传播
type Step[T any] struct {
	value T
	tag   stepTag
}

// Cont 构造一个 Continue 信号：携带 v 继续归约。
func Cont[T any](v T) Step[T] {
	return Step[T]{value: v, tag: tagContinue}
}

// Stop 构造一个 Stop 信号：携带 v 作为最终累加器，要求驱动循环立即停止。
func Stop[T any](v T) Step[T] {
	return Step[T]{value: v, tag: tagStop}
}

// IsContinue 返回是否为 Continue。
func (s Step[T]) IsContinue() bool { return s.tag == tagContinue }

// IsStop 返回是否为 Stop。
func (s Step[T]) IsStop() bool { return s.tag == tagStop }

// Unwrap 取出载荷，不区分 Continue/Stop。
func (s Step[T]) Unwrap() T { return s.value }

// Map 对载荷应用 f，保留标签。
func (s Step[T]) Map(f func(T) T) Step[T] {
	s.value = f(s.value)
	return s
}

// Bind 是单子绑定：Continue 派发给 f，Stop 短路并原样携带载荷。
//
// 满足单子三定律（见 step_test.go）：
//   - 左单位元：Cont(x).Bind(f) == f(x)
//   - 右单位元：m.Bind(Cont) == m
//   - 结合律：m.Bind(f).Bind(g) == m.Bind(func(x) { f(x).Bind(g) })
func (s Step[T]) Bind(f func(T) Step[T]) Step[T] {
	if s.tag == tagStop {
		return s
	}
	return f(s.value)
}

// MapStep 是改变载荷类型的 Map；方法无法引入新类型参数，故以包级函数提供。
func MapStep[T, U any](s Step[T], f func(T) U) Step[U] {
	return Step[U]{value: f(s.value), tag: s.tag}
}

func (s Step[T]) String() string {
	if s.tag == tagStop {
		return fmt.Sprintf("Stop(%v)", s.value)
	}
	return fmt.Sprintf("Continue(%v)", s.value)
}
