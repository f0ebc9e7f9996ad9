package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 配置类错误（如 Chunk 的 size < 1）在构造期立刻失败，绝不延迟到驱动中途
//   - 用户闭包的失败不属于领域错误：引擎不捕获、不包装，按 panic 原样传播
//   - 提供错误代码（Code）与模块（Module），便于上层分发与观测
type DomainError struct {
	Code    string // 错误代码（如 "INVALID_INPUT"）
	Message string // 错误消息
	Module  string // 模块名称（如 "transform", "kernel"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeInvalidInput = "INVALID_INPUT" // 配置/入参无效
	ErrorCodeNotFound     = "NOT_FOUND"     // 资源不存在
	ErrorCodeUnavailable  = "UNAVAILABLE"   // 后端不可用
)

// 模块名称常量
const (
	ModuleTransform = "transform" // 标准变换库
	ModulePipeline  = "pipeline"  // 桥接层
	ModuleKernel    = "kernel"    // 批量数值内核
	ModuleStore     = "store"     // 去重存储
	ModuleDSL       = "dsl"       // CEL 表达式
)

// IsInvalidInput 检查错误是否为 INVALID_INPUT。
func IsInvalidInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidInput
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
