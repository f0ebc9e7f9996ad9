package core

// ReduceFn 是组合边界上的归约函数：元素类型保持强类型，累加器类型在
// 边界处擦除为 any。
//
// 设计原则：
//   - Transducer 必须对任意累加器类型多态，Go 的方法不允许引入新类型参数，
//     因此在组合边界统一擦除累加器类型
//   - 绝大多数 transform 只透传 acc、从不触碰其内容，擦除不产生额外断言
//   - 强类型只在 collector 的最内层归约函数出现，由 Erase 在边界处桥接
type ReduceFn[T any] func(acc any, v T) Step[any]

// Reducer 是强类型归约函数：(累加器, 元素) -> Step[累加器]，collector
// 以它表达终端逻辑。
type Reducer[A, T any] func(acc A, v T) Step[A]

// Erase 把强类型 Reducer 擦除为组合边界所需的 ReduceFn。
// 断言只发生在最内层、每元素一次；上游各级 transform 不感知累加器类型。
//
// nil 累加器按 A 的零值处理：宿主层（A = any）把 nil 当作一等值，
// 空接口对接口类型的硬断言会 panic，这里必须容忍。
func Erase[A, T any](r Reducer[A, T]) ReduceFn[T] {
	return func(acc any, v T) Step[any] {
		a, _ := acc.(A)
		return MapStep(r(a, v), func(a A) any { return a })
	}
}
