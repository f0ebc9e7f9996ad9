package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/flowkit/pipeline"
)

// 使用配置驱动时，需在 main 或入口处 import _ "github.com/rushteam/flowkit/config/builders"
// 以触发内置算子（map.cel、filter.cel、take、drop 等）的 init 注册。

// OpBuilder 与 pipeline.OpBuilder 一致：根据 config 构建算子。
// 各组件在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type OpBuilder = pipeline.OpBuilder

var (
	defaultBuilders   = make(map[string]OpBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种算子的构建逻辑，供 DefaultFactory 与配置驱动使用。
// 建议在各组件的 init 中调用，例如：func init() { config.Register("take", buildTake) }
func Register(typeName string, builder OpBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的算子类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultFactory 返回基于当前注册表构建的 OpFactory，包含所有通过 Register 注册的算子类型。
func DefaultFactory() *pipeline.OpFactory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := pipeline.NewOpFactory()
	for typeName, builder := range defaultBuilders {
		f.Register(typeName, builder)
	}
	return f
}

// ValidateConfig 校验配置中所有算子类型均已注册；若有未支持类型则返回包含已支持列表的错误。
func ValidateConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	for _, oc := range cfg.Pipeline.Ops {
		defaultBuildersMu.RLock()
		_, ok := defaultBuilders[oc.Type]
		defaultBuildersMu.RUnlock()
		if !ok {
			return fmt.Errorf("unsupported op type %q, supported: %v", oc.Type, SupportedTypes())
		}
	}
	return nil
}

// BuildFromYAML 是配置驱动的一站式入口：加载 YAML、校验、构建 Pipeline。
func BuildFromYAML(path string) (*pipeline.Pipeline, error) {
	cfg, err := pipeline.LoadFromYAML(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg.Build(DefaultFactory())
}

// BuildYAML 与 BuildFromYAML 相同，但直接接收 YAML 字节。
func BuildYAML(data []byte) (*pipeline.Pipeline, error) {
	cfg, err := pipeline.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg.Build(DefaultFactory())
}
