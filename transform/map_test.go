package transform

import (
	"slices"
	"testing"

	"github.com/rushteam/flowkit/collect"
	"github.com/rushteam/flowkit/core"
)

func TestMap(t *testing.T) {
	got := collect.ToSlice(Map(func(v int) int { return v * 2 }), slices.Values([]int{1, 2, 3}))
	want := []int{2, 4, 6}
	if !slices.Equal(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestMapChangesType(t *testing.T) {
	got := collect.ToSlice(Map(func(v int) string {
		return string(rune('a' + v))
	}), slices.Values([]int{0, 1, 2}))
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	tests := []struct {
		name string
		src  []int
		want []int
	}{
		{"混合", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"全部通过", []int{2, 4}, []int{2, 4}},
		{"全部拒绝", []int{1, 3, 5}, nil},
		{"空源", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect.ToSlice(Filter(even), slices.Values(tt.src))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReject(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	got := collect.ToSlice(Reject(even), slices.Values([]int{1, 2, 3, 4, 5}))
	want := []int{1, 3, 5}
	if !slices.Equal(got, want) {
		t.Errorf("Reject() = %v, want %v", got, want)
	}
}

// TestMapFusion 验证 Map 融合律：Compose(Map(f), Map(g)) ≡ Map(g∘f)。
func TestMapFusion(t *testing.T) {
	f := func(v int) int { return v + 1 }
	g := func(v int) int { return v * 3 }
	src := []int{1, 2, 3, 4}

	composed := collect.ToSlice(
		core.Compose[int, int, int](Map(f), Map(g)), slices.Values(src))
	fused := collect.ToSlice(
		Map(func(v int) int { return g(f(v)) }), slices.Values(src))

	if !slices.Equal(composed, fused) {
		t.Errorf("Compose(Map, Map) = %v, Map(g∘f) = %v", composed, fused)
	}
}

// TestFilterFusion 验证 Filter 融合律：Compose(Filter(p), Filter(q)) ≡ Filter(p && q)。
func TestFilterFusion(t *testing.T) {
	p := func(v int) bool { return v%2 == 0 }
	q := func(v int) bool { return v > 3 }
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}

	composed := collect.ToSlice(
		core.Compose[int, int, int](Filter(p), Filter(q)), slices.Values(src))
	fused := collect.ToSlice(
		Filter(func(v int) bool { return p(v) && q(v) }), slices.Values(src))

	if !slices.Equal(composed, fused) {
		t.Errorf("Compose(Filter, Filter) = %v, Filter(p&&q) = %v", composed, fused)
	}
}

func TestMapFilterPipeline(t *testing.T) {
	got := collect.ToSlice(core.Compose[int, int, int](
		Map(func(v int) int { return v * v }),
		Filter(func(v int) bool { return v > 5 }),
	), collect.Range(1, 6))
	want := []int{9, 16, 25}
	if !slices.Equal(got, want) {
		t.Errorf("平方后过滤 = %v, want %v", got, want)
	}
}

func TestMapFilterTakeChain(t *testing.T) {
	op := core.Compose[int, int, int](
		core.Compose[int, int, int](
			Map(func(v int) int { return v * 2 }),
			Filter(func(v int) bool { return v%3 == 0 }),
		),
		Take[int](5),
	)
	got := collect.ToSlice(op, collect.Range(1, 101))
	want := []int{6, 12, 18, 24, 30}
	if !slices.Equal(got, want) {
		t.Errorf("Map|Filter|Take = %v, want %v", got, want)
	}
}

func TestWhen(t *testing.T) {
	got := collect.ToSlice(When(
		func(v int) bool { return v < 0 },
		func(v int) int { return 0 },
	), slices.Values([]int{-2, 3, -1, 4}))
	want := []int{0, 3, 0, 4}
	if !slices.Equal(got, want) {
		t.Errorf("When() = %v, want %v", got, want)
	}
}

func TestIfElse(t *testing.T) {
	got := collect.ToSlice(IfElse(
		func(v int) bool { return v%2 == 0 },
		func(v int) int { return v * 10 },
		func(v int) int { return -v },
	), slices.Values([]int{1, 2, 3, 4}))
	want := []int{-1, 20, -3, 40}
	if !slices.Equal(got, want) {
		t.Errorf("IfElse() = %v, want %v", got, want)
	}
}

func TestUnless(t *testing.T) {
	got := collect.ToSlice(Unless(
		func(v int) bool { return v%2 == 0 },
		func(v int) int { return -v },
	), slices.Values([]int{1, 2, 3, 4}))
	want := []int{-1, 2, -3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("Unless() = %v, want %v", got, want)
	}
}
