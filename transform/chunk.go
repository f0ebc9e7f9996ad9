package transform

import (
	"fmt"

	"github.com/rushteam/flowkit/core"
)

type chunk[T any] struct {
	size int
}

// Chunk 把元素按 size 分组缓冲，攒满即转发一组。
// 末尾不足 size 的残组被丢弃（流式语义下没有“收尾”阶段）。
//
// size < 1 属于配置错误，在构造期返回 core.DomainError。
func Chunk[T any](size int) (core.Transducer[T, []T], error) {
	if size < 1 {
		return nil, core.NewDomainError(core.ModuleTransform, core.ErrorCodeInvalidInput,
			fmt.Sprintf("chunk: size 必须 >= 1，当前为 %d", size))
	}
	return chunk[T]{size: size}, nil
}

// MustChunk 是 Chunk 的断言版本，size 非法时 panic。仅建议在字面量场景使用。
func MustChunk[T any](size int) core.Transducer[T, []T] {
	t, err := Chunk[T](size)
	if err != nil {
		panic(err)
	}
	return t
}

func (t chunk[T]) Apply(rf core.ReduceFn[[]T]) core.ReduceFn[T] {
	buf := make([]T, 0, t.size)
	return func(acc any, v T) core.Step[any] {
		buf = append(buf, v)
		if len(buf) < t.size {
			return core.Cont(acc)
		}
		out := make([]T, t.size)
		copy(out, buf)
		buf = buf[:0]
		return rf(acc, out)
	}
}
