// Package transform 提供标准变换库：Map、Filter、Take、Scan、FlatMap 等
// 具体 Transducer 实现。
//
// 设计要点：
//   - 无状态变换（Map/Filter/Tap 等）纯闭包实现，拒绝元素用 Continue 表达，
//     Stop 只留给真正的早停（Take/TakeWhile）
//   - 有状态变换（Take/Drop/Unique/Scan/Chunk 等）在 Apply 内部分配
//     本次驱动的私有状态：同一实例可安全地反复构建驱动函数，
//     而每个已构建的驱动函数只承载一次消费
//   - 配置错误（如 Chunk 的 size < 1）在构造期返回 core.DomainError，
//     绝不延迟到驱动中途
package transform
