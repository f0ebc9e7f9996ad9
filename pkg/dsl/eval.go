// Package dsl 是桥接层的表达式宿主：用 CEL (Common Expression Language)
// 把字符串表达式编译为可复用的元素级函数。
//
// 设计要点：
//   - 表达式在构建期编译（编译失败属于配置错误，立刻返回 DomainError），
//     编译产物按表达式缓存，线程安全、可复用
//   - 求值期的宿主失败一律转为中性默认值：谓词视为 false、变换视为 nil、
//     归约视为累加器不变——宿主错误绝不进入引擎逻辑
//   - 宿主值编组规则：进入 CEL 的 Go 数值按 CEL 语义处理，产出统一为
//     int64 / float64 / string / bool / []any
package dsl

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/rushteam/flowkit/core"
)

var (
	// elemEnv 是元素表达式环境：单变量 x 绑定当前元素。
	// 初始化错误与 env 一起持久化，后续调用仍能看到失败原因。
	elemEnv     *cel.Env
	elemEnvErr  error
	elemEnvOnce sync.Once

	// foldEnv 是归约表达式环境：acc 绑定累加器，x 绑定当前元素
	foldEnv     *cel.Env
	foldEnvErr  error
	foldEnvOnce sync.Once
)

func getElemEnv() (*cel.Env, error) {
	elemEnvOnce.Do(func() {
		elemEnv, elemEnvErr = cel.NewEnv(
			cel.Variable("x", cel.DynType),
			ext.Strings(),
		)
	})
	if elemEnvErr != nil {
		return nil, core.NewDomainError(core.ModuleDSL, core.ErrorCodeUnavailable,
			fmt.Sprintf("cel env 初始化失败: %v", elemEnvErr))
	}
	return elemEnv, nil
}

func getFoldEnv() (*cel.Env, error) {
	foldEnvOnce.Do(func() {
		foldEnv, foldEnvErr = cel.NewEnv(
			cel.Variable("acc", cel.DynType),
			cel.Variable("x", cel.DynType),
			ext.Strings(),
		)
	})
	if foldEnvErr != nil {
		return nil, core.NewDomainError(core.ModuleDSL, core.ErrorCodeUnavailable,
			fmt.Sprintf("cel env 初始化失败: %v", foldEnvErr))
	}
	return foldEnv, nil
}

var (
	progCache   = make(map[string]cel.Program)
	progCacheMu sync.RWMutex
)

// compile 编译表达式并缓存产物；同一表达式只编译一次。
func compile(env *cel.Env, cacheKey, expr string) (cel.Program, error) {
	progCacheMu.RLock()
	prg, ok := progCache[cacheKey]
	progCacheMu.RUnlock()
	if ok {
		return prg, nil
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, core.NewDomainError(core.ModuleDSL, core.ErrorCodeInvalidInput,
			fmt.Sprintf("表达式编译失败 %q: %v", expr, issues.Err()))
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleDSL, core.ErrorCodeInvalidInput,
			fmt.Sprintf("表达式构建失败 %q: %v", expr, err))
	}

	progCacheMu.Lock()
	progCache[cacheKey] = prg
	progCacheMu.Unlock()
	return prg, nil
}

// Predicate 把表达式编译为谓词。求值错误或结果非布尔时返回 false。
//
// 示例：`x % 2 == 0`、`x > 0.5 && x < 1.0`、`x.contains("hot")`。
func Predicate(expr string) (func(any) bool, error) {
	env, err := getElemEnv()
	if err != nil {
		return nil, err
	}
	prg, err := compile(env, "elem:"+expr, expr)
	if err != nil {
		return nil, err
	}
	return func(v any) bool {
		out, _, err := prg.Eval(map[string]any{"x": v})
		if err != nil {
			return false
		}
		b, ok := out.Value().(bool)
		return ok && b
	}, nil
}

// Transform 把表达式编译为单值变换。求值错误时返回 nil。
//
// 示例：`x * 2`、`x + ".suffix"`、`string(x)`。
func Transform(expr string) (func(any) any, error) {
	env, err := getElemEnv()
	if err != nil {
		return nil, err
	}
	prg, err := compile(env, "elem:"+expr, expr)
	if err != nil {
		return nil, err
	}
	return func(v any) any {
		out, _, err := prg.Eval(map[string]any{"x": v})
		if err != nil {
			return nil
		}
		return out.Value()
	}, nil
}

var anySliceType = reflect.TypeOf([]any{})

// TransformList 把表达式编译为子序列展开函数（FlatMap 用）。
// 求值错误或结果不是列表时返回空序列。
//
// 示例：`[x, x + 1]`、`x.split(",")`。
func TransformList(expr string) (func(any) []any, error) {
	env, err := getElemEnv()
	if err != nil {
		return nil, err
	}
	prg, err := compile(env, "elem:"+expr, expr)
	if err != nil {
		return nil, err
	}
	return func(v any) []any {
		out, _, err := prg.Eval(map[string]any{"x": v})
		if err != nil {
			return nil
		}
		native, err := out.ConvertToNative(anySliceType)
		if err != nil {
			return nil
		}
		list, _ := native.([]any)
		return list
	}, nil
}

// Fold 把表达式编译为二元归约函数（Scan 用），acc 与 x 分别绑定累加器
// 与当前元素。求值错误时返回累加器不变。
//
// 示例：`acc + x`、`acc * x`。
func Fold(expr string) (func(acc, x any) any, error) {
	env, err := getFoldEnv()
	if err != nil {
		return nil, err
	}
	prg, err := compile(env, "fold:"+expr, expr)
	if err != nil {
		return nil, err
	}
	return func(acc, x any) any {
		out, _, err := prg.Eval(map[string]any{"acc": acc, "x": x})
		if err != nil {
			return acc
		}
		return out.Value()
	}, nil
}
