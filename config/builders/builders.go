// Package builders 注册全部内置算子的配置构建器。
// 以空白导入触发注册：import _ "github.com/rushteam/flowkit/config/builders"
package builders

import (
	"github.com/rushteam/flowkit/config"
	"github.com/rushteam/flowkit/core"
	"github.com/rushteam/flowkit/pkg/conv"
	"github.com/rushteam/flowkit/pkg/dsl"
	"github.com/rushteam/flowkit/transform"
)

func init() {
	config.Register("map.cel", buildMapCEL)
	config.Register("filter.cel", buildFilterCEL)
	config.Register("reject.cel", buildRejectCEL)
	config.Register("flatmap.cel", buildFlatMapCEL)
	config.Register("takewhile.cel", buildTakeWhileCEL)
	config.Register("dropwhile.cel", buildDropWhileCEL)
	config.Register("scan.cel", buildScanCEL)
	config.Register("unique_by.cel", buildUniqueByCEL)
	config.Register("take", buildTake)
	config.Register("drop", buildDrop)
	config.Register("unique", buildUnique)
	config.Register("repeat_each", buildRepeatEach)
	config.Register("chunk", buildChunk)
}

// exprOf 从 config 取 expr 字段；缺失属于配置错误。
func exprOf(cfg map[string]any) (string, error) {
	expr, ok := conv.ToString(cfg["expr"])
	if !ok || expr == "" {
		return "", core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			"缺少 expr 配置")
	}
	return expr, nil
}

func buildMapCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	f, err := dsl.Transform(expr)
	if err != nil {
		return nil, err
	}
	return transform.Map(f), nil
}

func buildFilterCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return transform.Filter(pred), nil
}

func buildRejectCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return transform.Reject(pred), nil
}

func buildFlatMapCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	f, err := dsl.TransformList(expr)
	if err != nil {
		return nil, err
	}
	return transform.FlatMap(f), nil
}

func buildTakeWhileCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return transform.TakeWhile(pred), nil
}

func buildDropWhileCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	pred, err := dsl.Predicate(expr)
	if err != nil {
		return nil, err
	}
	return transform.DropWhile(pred), nil
}

func buildScanCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	fold, err := dsl.Fold(expr)
	if err != nil {
		return nil, err
	}
	seed := cfg["seed"] // seed 缺省为 nil，由表达式自行兜底
	return transform.Scan(seed, fold), nil
}

func buildUniqueByCEL(cfg map[string]any) (core.Transducer[any, any], error) {
	expr, err := exprOf(cfg)
	if err != nil {
		return nil, err
	}
	key, err := dsl.Transform(expr)
	if err != nil {
		return nil, err
	}
	return transform.UniqueBy(key), nil
}

func buildTake(cfg map[string]any) (core.Transducer[any, any], error) {
	n := conv.ConfigGetInt(cfg, "n", -1)
	if n < 0 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			"take: 缺少 n 或 n < 0")
	}
	return transform.Take[any](n), nil
}

func buildDrop(cfg map[string]any) (core.Transducer[any, any], error) {
	n := conv.ConfigGetInt(cfg, "n", -1)
	if n < 0 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			"drop: 缺少 n 或 n < 0")
	}
	return transform.Drop[any](n), nil
}

func buildUnique(_ map[string]any) (core.Transducer[any, any], error) {
	return transform.Unique[any](), nil
}

func buildRepeatEach(cfg map[string]any) (core.Transducer[any, any], error) {
	n := conv.ConfigGetInt(cfg, "n", -1)
	if n < 0 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			"repeat_each: 缺少 n 或 n < 0")
	}
	return transform.RepeatEach[any](n), nil
}

func buildChunk(cfg map[string]any) (core.Transducer[any, any], error) {
	size := conv.ConfigGetInt(cfg, "size", 0)
	ch, err := transform.Chunk[any](size)
	if err != nil {
		return nil, err
	}
	// Chunk 产出 []any，包一层让算子签名回到 any -> any
	return core.Compose(ch, transform.Map(func(v []any) any { return v })), nil
}
