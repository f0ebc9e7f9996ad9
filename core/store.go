package core

import "context"

// SeenStore 是全局去重的存储接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store、ext/store/redis）实现，
//     领域层不依赖任何具体后端
//   - 引擎本身不做网络与持久化；SeenStore 只服务于 transform.UniqueByStore
//     这一可选变换，用于跨进程/跨批次的共享去重
//   - 后端失败以“中性”处理：调用方把出错的元素当作首次出现放行
type SeenStore interface {
	// Name 返回后端名称（用于日志/排障）
	Name() string

	// Add 记录 key，返回 true 表示 key 首次出现。
	// 判断与记录必须是一个原子操作（Redis 的 SADD 语义）。
	Add(ctx context.Context, key string) (bool, error)

	// Has 查询 key 是否已出现过。
	Has(ctx context.Context, key string) (bool, error)

	// Close 关闭连接/释放资源。
	Close() error
}
