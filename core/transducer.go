package core

// Transducer 是 Flowkit 的核心抽象：归约函数的变换器。
// 把一个消费 Out 的归约函数改写为一个消费 In 的归约函数。
//
// 设计原则：
//   - 组合的是“变换”而不是“数据”：链路搭好后对源做单趟遍历，无中间物化
//   - Apply 的代价与源长度无关：每级组合只包一层闭包，O(1) 分配
//   - 有状态 transform 在 Apply 内部分配本次驱动的私有状态，因此同一个
//     Transducer 实例可以反复用来构建多个互不干扰的驱动函数；
//     但同一个“已构建”的 ReduceFn 承载一次消费，跨两次独立驱动复用
//     会带着上一次的计数器/缓冲继续走，属于使用错误
type Transducer[In, Out any] interface {
	// Apply 把下游归约函数 rf 变换为上游归约函数。
	Apply(rf ReduceFn[Out]) ReduceFn[In]
}

type identity[T any] struct{}

// Identity 是恒等 Transducer：原样返回下游归约函数。
// 它是组合的左右单位元：Compose(Identity, t) ≡ t ≡ Compose(t, Identity)。
func Identity[T any]() Transducer[T, T] { return identity[T]{} }

func (identity[T]) Apply(rf ReduceFn[T]) ReduceFn[T] { return rf }

type compose[In, Mid, Out any] struct {
	first  Transducer[In, Mid]
	second Transducer[Mid, Out]
}

// Compose 组合两个 Transducer：数据先流经 a 再流经 b。
// 等价于函数组合：先用 b 变换终端归约函数，再用 a 包裹。
// 组合满足结合律：Compose(Compose(a, b), c) 与 Compose(a, Compose(b, c))
// 对任意输入序列产出一致（见 transducer_test.go）。
func Compose[In, Mid, Out any](a Transducer[In, Mid], b Transducer[Mid, Out]) Transducer[In, Out] {
	return compose[In, Mid, Out]{first: a, second: b}
}

func (c compose[In, Mid, Out]) Apply(rf ReduceFn[Out]) ReduceFn[In] {
	return c.first.Apply(c.second.Apply(rf))
}
