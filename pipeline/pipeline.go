package pipeline

import (
	"slices"

	"github.com/rushteam/flowkit/collect"
	"github.com/rushteam/flowkit/core"
	"github.com/rushteam/flowkit/kernel"
	"github.com/rushteam/flowkit/pkg/conv"
	"github.com/rushteam/flowkit/pkg/dsl"
	"github.com/rushteam/flowkit/transform"
)

// Pipeline 是 Flowkit 的桥接层：面向宿主值（any）的流水线构建器。
//
// 设计要点：
//   - 泛型引擎（core/transform/collect）保持强类型；宿主值的编组只发生在
//     这一层的边界上，引擎从不为 any 特化
//   - 构建方法返回新的 Pipeline（写时复制），半成品可以安全地分叉复用
//   - 顺序保证：转发顺序、早停位置与泛型引擎完全一致；每个被求值的
//     源元素恰好产生一次进入算子闭包的调用（副作用与计费可依赖）
//   - 算子既可用 Go 闭包（Map/Filter/...），也可用 CEL 表达式
//     （MapExpr/FilterExpr/...，表达式编译失败立即返回配置错误）
type Pipeline struct {
	ops []core.Transducer[any, any]
}

// New 创建空流水线。
func New() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) with(op core.Transducer[any, any]) *Pipeline {
	ops := make([]core.Transducer[any, any], len(p.ops), len(p.ops)+1)
	copy(ops, p.ops)
	return &Pipeline{ops: append(ops, op)}
}

// Use 追加一个自定义算子：任何 core.Transducer[any, any] 实现均可插入，
// 这是宿主流水线的扩展点。
func (p *Pipeline) Use(op core.Transducer[any, any]) *Pipeline {
	return p.with(op)
}

// Map 追加一个变换算子。
func (p *Pipeline) Map(f func(any) any) *Pipeline {
	return p.with(transform.Map(f))
}

// Filter 追加一个过滤算子：仅保留 pred 成立的元素。
func (p *Pipeline) Filter(pred func(any) bool) *Pipeline {
	return p.with(transform.Filter(pred))
}

// Reject 追加一个排除算子：丢弃 pred 成立的元素。
func (p *Pipeline) Reject(pred func(any) bool) *Pipeline {
	return p.with(transform.Reject(pred))
}

// Take 追加一个截断算子：转发前 n 个元素后早停。
func (p *Pipeline) Take(n int) *Pipeline {
	return p.with(transform.Take[any](n))
}

// TakeWhile 追加一个条件截断算子。
func (p *Pipeline) TakeWhile(pred func(any) bool) *Pipeline {
	return p.with(transform.TakeWhile(pred))
}

// Drop 追加一个跳过算子：吸收前 n 个元素。
func (p *Pipeline) Drop(n int) *Pipeline {
	return p.with(transform.Drop[any](n))
}

// DropWhile 追加一个条件跳过算子（单向闸门）。
func (p *Pipeline) DropWhile(pred func(any) bool) *Pipeline {
	return p.with(transform.DropWhile(pred))
}

// Tap 追加一个副作用算子：元素原样透传。
func (p *Pipeline) Tap(f func(any)) *Pipeline {
	return p.with(transform.Tap(f))
}

// FlatMap 追加一个展开算子：f 返回的子序列按序逐个转发。
func (p *Pipeline) FlatMap(f func(any) []any) *Pipeline {
	return p.with(transform.FlatMap(f))
}

// Pluck 追加一个字段抽取算子：从 map[string]any 元素中取 field，
// 缺失或类型不符时产出 nil。比 Map(x => x[field]) 更直观。
func (p *Pipeline) Pluck(field string) *Pipeline {
	return p.Map(func(v any) any {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		return m[field]
	})
}

// MapExpr 以 CEL 表达式追加变换算子；表达式求值失败时产出 nil。
func (p *Pipeline) MapExpr(expr string) (*Pipeline, error) {
	f, err := dsl.Transform(expr)
	if err != nil {
		return nil, err
	}
	return p.Map(f), nil
}

// FilterExpr 以 CEL 表达式追加过滤算子；表达式求值失败视为 false。
func (p *Pipeline) FilterExpr(expr string) (*Pipeline, error) {
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return p.Filter(pred), nil
}

// RejectExpr 以 CEL 表达式追加排除算子。
func (p *Pipeline) RejectExpr(expr string) (*Pipeline, error) {
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return p.Reject(pred), nil
}

// TakeWhileExpr 以 CEL 表达式追加条件截断算子。
// 表达式求值失败视为 false，即在该元素处早停。
func (p *Pipeline) TakeWhileExpr(expr string) (*Pipeline, error) {
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return p.TakeWhile(pred), nil
}

// DropWhileExpr 以 CEL 表达式追加条件跳过算子。
func (p *Pipeline) DropWhileExpr(expr string) (*Pipeline, error) {
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return p.DropWhile(pred), nil
}

// FlatMapExpr 以 CEL 表达式追加展开算子，表达式应返回列表。
func (p *Pipeline) FlatMapExpr(expr string) (*Pipeline, error) {
	f, err := dsl.TransformList(expr)
	if err != nil {
		return nil, err
	}
	return p.FlatMap(f), nil
}

// compile 把算子列表折叠为一个组合 Transducer。
// 右结合折叠；由组合结合律保证与任何结合方式产出一致。
func (p *Pipeline) compile() core.Transducer[any, any] {
	t := core.Identity[any]()
	for i := len(p.ops) - 1; i >= 0; i-- {
		t = core.Compose(p.ops[i], t)
	}
	return t
}

// Len 返回算子个数。
func (p *Pipeline) Len() int { return len(p.ops) }

// ToSlice 物化终端：单趟驱动源并按转发顺序收集输出。
// 早停后不再消费任何源元素。宿主侧约定返回值恒非 nil。
func (p *Pipeline) ToSlice(src []any) []any {
	out := collect.ToSlice(p.compile(), slices.Values(src))
	if out == nil {
		return []any{}
	}
	return out
}

// Reduce 外部归约终端：用宿主提供的 reducer 折叠输出。
// 宿主 reducer 没有 Stop 通道，链路的早停仍由算子（如 Take）表达。
func (p *Pipeline) Reduce(src []any, seed any, reducer func(acc, v any) any) any {
	return collect.Reduce(p.compile(), slices.Values(src), seed,
		func(acc any, v any) core.Step[any] {
			return core.Cont(reducer(acc, v))
		})
}

// Sum 数值求和终端。空流水线且源为纯数值序列时透明切换到批量内核
// （kernel.SumFloat64，内部按规模阈值选择并行或标量实现），
// 否则走通用驱动路径；两条路径对整数值输入产出一致。
func (p *Pipeline) Sum(src []any) float64 {
	if len(p.ops) == 0 {
		if data, ok := conv.ToFloat64Slice(src); ok {
			return kernel.SumFloat64(data)
		}
	}
	return collect.Reduce(p.compile(), slices.Values(src), 0.0,
		func(acc float64, v any) core.Step[float64] {
			f, _ := conv.ToFloat64(v)
			return core.Cont(acc + f)
		})
}
