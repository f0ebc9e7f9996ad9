// Package kernel 提供批量数值运算：对 []float64 的逐元素映射、求和与
// 逐元素乘法。小批量走标量循环；超过阈值后按 CPU 数切片并行，各 goroutine
// 写入互不重叠的区间。
//
// 桥接层的 Sum 终端在源为纯数值序列且无算子时走这里的快速路径。
package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/flowkit/core"
)

// ParallelThreshold 是启用并行的最小长度。低于该值时并行调度的开销
// 超过收益，直接走标量循环。
const ParallelThreshold = 4096

// MapFloat64 对 src 逐元素应用 f，返回新切片，不修改 src。
func MapFloat64(src []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(src))
	if len(src) < ParallelThreshold {
		for i, v := range src {
			out[i] = f(v)
		}
		return out
	}
	forEachChunk(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = f(src[i])
		}
	})
	return out
}

// SumFloat64 返回 src 全部元素之和，空切片返回 0。
func SumFloat64(src []float64) float64 {
	if len(src) < ParallelThreshold {
		var sum float64
		for _, v := range src {
			sum += v
		}
		return sum
	}
	n := chunkCount(len(src))
	partial := make([]float64, n)
	forEachChunkIdx(len(src), func(idx, lo, hi int) {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += src[i]
		}
		partial[idx] = sum
	})
	var sum float64
	for _, p := range partial {
		sum += p
	}
	return sum
}

// MulFloat64 返回 a、b 的逐元素乘积。长度不一致返回 INVALID_INPUT 错误。
func MulFloat64(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, core.NewDomainError(core.ModuleKernel, core.ErrorCodeInvalidInput,
			"mul: 两切片长度不一致")
	}
	out := make([]float64, len(a))
	if len(a) < ParallelThreshold {
		for i := range a {
			out[i] = a[i] * b[i]
		}
		return out, nil
	}
	forEachChunk(len(a), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = a[i] * b[i]
		}
	})
	return out, nil
}

// DotFloat64 返回 a、b 的内积。长度不一致返回 INVALID_INPUT 错误。
func DotFloat64(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, core.NewDomainError(core.ModuleKernel, core.ErrorCodeInvalidInput,
			"dot: 两切片长度不一致")
	}
	if len(a) < ParallelThreshold {
		var sum float64
		for i := range a {
			sum += a[i] * b[i]
		}
		return sum, nil
	}
	n := chunkCount(len(a))
	partial := make([]float64, n)
	forEachChunkIdx(len(a), func(idx, lo, hi int) {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += a[i] * b[i]
		}
		partial[idx] = sum
	})
	var sum float64
	for _, p := range partial {
		sum += p
	}
	return sum, nil
}

// ScaleFloat64 返回 src 逐元素乘以 k 的新切片。
func ScaleFloat64(src []float64, k float64) []float64 {
	return MapFloat64(src, func(v float64) float64 { return v * k })
}

func chunkCount(n int) int {
	c := runtime.NumCPU()
	if c > n {
		c = n
	}
	if c < 1 {
		c = 1
	}
	return c
}

// forEachChunk 将 [0, n) 均分为 chunkCount(n) 段并行执行。
// fn 只写各自区间，不需要加锁。
func forEachChunk(n int, fn func(lo, hi int)) {
	forEachChunkIdx(n, func(_, lo, hi int) { fn(lo, hi) })
}

func forEachChunkIdx(n int, fn func(idx, lo, hi int)) {
	chunks := chunkCount(n)
	size := (n + chunks - 1) / chunks
	var g errgroup.Group
	for c := 0; c < chunks; c++ {
		lo := c * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		idx := c
		g.Go(func() error {
			fn(idx, lo, hi)
			return nil
		})
	}
	// fn 不返回错误，Wait 仅用于同步
	_ = g.Wait()
}
