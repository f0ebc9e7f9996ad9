package collect

import (
	"iter"

	"github.com/rushteam/flowkit/core"
)

// Partition 按 pred 把输出分成通过/未通过两组，始终 Continue。
func Partition[In, Out any](t core.Transducer[In, Out], src iter.Seq[In], pred func(Out) bool) (pass, fail []Out) {
	type parts struct{ pass, fail []Out }
	r := Reduce(t, src, parts{}, func(acc parts, v Out) core.Step[parts] {
		if pred(v) {
			acc.pass = append(acc.pass, v)
		} else {
			acc.fail = append(acc.fail, v)
		}
		return core.Cont(acc)
	})
	return r.pass, r.fail
}

// Groups 是插入有序的分组结果：键按首次出现顺序排列，
// 每个键下的元素保持转发顺序。
type Groups[K comparable, V any] struct {
	keys   []K
	groups map[K][]V
}

// Keys 返回按首次出现顺序排列的键。
func (g *Groups[K, V]) Keys() []K { return g.keys }

// Get 返回键 k 下的分组。
func (g *Groups[K, V]) Get(k K) []V { return g.groups[k] }

// Len 返回分组个数。
func (g *Groups[K, V]) Len() int { return len(g.keys) }

// Map 返回键到分组的只读视图。
func (g *Groups[K, V]) Map() map[K][]V { return g.groups }

// GroupBy 按 key(v) 分组，始终 Continue；键与键内元素都保持插入顺序。
func GroupBy[In, Out any, K comparable](t core.Transducer[In, Out], src iter.Seq[In], key func(Out) K) *Groups[K, Out] {
	g := &Groups[K, Out]{groups: make(map[K][]Out)}
	Reduce(t, src, struct{}{}, func(acc struct{}, v Out) core.Step[struct{}] {
		k := key(v)
		if _, ok := g.groups[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], v)
		return core.Cont(acc)
	})
	return g
}

// Frequencies 统计每个输出值的出现次数。
func Frequencies[In any, Out comparable](t core.Transducer[In, Out], src iter.Seq[In]) map[Out]int {
	return Reduce(t, src, map[Out]int{}, func(acc map[Out]int, v Out) core.Step[map[Out]int] {
		acc[v]++
		return core.Cont(acc)
	})
}
