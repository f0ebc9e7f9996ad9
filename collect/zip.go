package collect

import "iter"

// Pair 是 Zip 系列的输出元组。
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip 成对合并两个序列，止于较短的一方。
// 双输入不符合单输入 Transducer 模型，独立实现。
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) []Pair[A, B] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith 成对合并两个序列并应用 f，止于较短的一方。
func ZipWith[A, B, C any](a iter.Seq[A], b iter.Seq[B], f func(A, B) C) []C {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	var out []C
	for {
		x, okA := nextA()
		y, okB := nextB()
		if !okA || !okB {
			return out
		}
		out = append(out, f(x, y))
	}
}

// ZipLongest 成对合并两个序列直至双方都耗尽，
// 较短一方耗尽后用 fillA/fillB 补位。
func ZipLongest[A, B any](a iter.Seq[A], b iter.Seq[B], fillA A, fillB B) []Pair[A, B] {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	var out []Pair[A, B]
	for {
		x, okA := nextA()
		y, okB := nextB()
		if !okA && !okB {
			return out
		}
		if !okA {
			x = fillA
		}
		if !okB {
			y = fillB
		}
		out = append(out, Pair[A, B]{First: x, Second: y})
	}
}
