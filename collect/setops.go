package collect

// 集合运算：成员关系用 set 计算，顺序与重复保留规则按定义序列固定。

func toSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// Intersection 返回 a 中也出现在 b 里的元素：顺序与重复来自 a。
func Intersection[T comparable](a, b []T) []T {
	inB := toSet(b)
	out := make([]T, 0)
	for _, v := range a {
		if _, ok := inB[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Difference 返回 a 中未出现在 b 里的元素：顺序与重复来自 a。
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)
	out := make([]T, 0)
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// Union 返回 a 与 b 的并集：先是 a 的全部元素（保留重复），
// 再按序追加 b 中未在 a 出现过的元素（b 侧只取首次出现）。
func Union[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a))
	out = append(out, a...)
	inA := toSet(a)
	seen := make(map[T]struct{})
	for _, v := range b {
		if _, ok := inA[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SymmetricDifference 返回仅出现在一侧的元素：
// 先是 a 中不在 b 的，再是 b 中不在 a 的，各自保持原序。
func SymmetricDifference[T comparable](a, b []T) []T {
	out := Difference(a, b)
	return append(out, Difference(b, a)...)
}
