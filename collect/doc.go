// Package collect 提供终端收集器：驱动已组合的归约函数对源序列做单趟遍历，
// 产出最终结果（ToSlice、Reduce、Sum、First、GroupBy 等）。
//
// 设计要点：
//   - 唯一的驱动循环在 Reduce 中：逐元素调用有效归约函数，一旦收到 Stop
//     立刻停止拉取——绝不消费 Stop 之后的下一个源元素
//   - 其余收集器都是 Reduce 加一个特化的 reducer/seed
//   - 双序列辅助函数（Zip/Merge/集合运算）不符合单输入 Transducer 模型，
//     独立提供，不经过驱动循环
package collect
