package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/flowkit/core"
)

// Config 是 Pipeline 的配置结构（支持 YAML/JSON）。
type Config struct {
	Pipeline struct {
		Name string     `yaml:"name" json:"name"`
		Ops  []OpConfig `yaml:"ops" json:"ops"`
	} `yaml:"pipeline" json:"pipeline"`
}

// OpConfig 是单个算子的配置。
type OpConfig struct {
	Type   string         `yaml:"type" json:"type"`     // map.cel / filter.cel / take 等
	Config map[string]any `yaml:"config" json:"config"` // 算子特定配置
}

// LoadFromYAML 从 YAML 文件加载 Pipeline 配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML 从 YAML 字节加载 Pipeline 配置。
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载 Pipeline 配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// Build 根据配置构建 Pipeline（需要 OpFactory 注册算子构建器）。
// 任一算子构建失败（未注册类型、表达式编译失败、参数非法）时整体失败，
// 配置错误绝不延迟到驱动中途。
func (c *Config) Build(factory *OpFactory) (*Pipeline, error) {
	p := New()
	for _, oc := range c.Pipeline.Ops {
		op, err := factory.Build(oc.Type, oc.Config)
		if err != nil {
			return nil, fmt.Errorf("build op %s: %w", oc.Type, err)
		}
		p = p.with(op)
	}
	return p, nil
}

// OpBuilder 根据配置构建一个宿主值算子。
type OpBuilder func(map[string]any) (core.Transducer[any, any], error)

// OpFactory 用于根据配置构建算子实例。
type OpFactory struct {
	builders map[string]OpBuilder
}

func NewOpFactory() *OpFactory {
	return &OpFactory{
		builders: make(map[string]OpBuilder),
	}
}

// Register 注册算子构建器。
func (f *OpFactory) Register(opType string, builder OpBuilder) {
	f.builders[opType] = builder
}

// Build 根据类型和配置构建算子。
func (f *OpFactory) Build(opType string, config map[string]any) (core.Transducer[any, any], error) {
	builder, ok := f.builders[opType]
	if !ok {
		return nil, fmt.Errorf("unknown op type: %s", opType)
	}
	return builder(config)
}
