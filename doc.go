// Package flowkit 是一个单遍数据变换工具包（Flow Kit）。
//
// 设计要点：
// - Transducer-first: 变换与遍历解耦，算子组合为单个归约函数后一遍驱动完成
// - 同步提前终止: Step 信号贯穿全链路，Take/First/Every 不多消费一个元素
// - 算子可扩展: 实现 core.Transducer 即可插拔扩展（代码构造或 YAML/CEL 配置均可）
package flowkit

import (
	"github.com/rushteam/flowkit/core"
	"github.com/rushteam/flowkit/pipeline"
)

// 轻量 facade：便于用户直接 import "flowkit" 使用核心抽象。
type Step[T any] = core.Step[T]
type ReduceFn[T any] = core.ReduceFn[T]
type Transducer[In, Out any] = core.Transducer[In, Out]
type Pipeline = pipeline.Pipeline

func Cont[T any](v T) Step[T] { return core.Cont(v) }
func Stop[T any](v T) Step[T] { return core.Stop(v) }

func NewPipeline() *Pipeline { return pipeline.New() }
