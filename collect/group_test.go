package collect

import (
	"slices"
	"testing"

	"github.com/rushteam/flowkit/core"
	"github.com/rushteam/flowkit/transform"
)

func TestPartition(t *testing.T) {
	pass, fail := Partition(core.Identity[int](), Range(1, 7),
		func(v int) bool { return v%2 == 0 })
	if !slices.Equal(pass, []int{2, 4, 6}) {
		t.Errorf("pass = %v, want [2 4 6]", pass)
	}
	if !slices.Equal(fail, []int{1, 3, 5}) {
		t.Errorf("fail = %v, want [1 3 5]", fail)
	}
}

func TestPartitionAfterTransform(t *testing.T) {
	// 先变换再分组：分组看到的是输出
	pass, fail := Partition(transform.Map(func(v int) int { return v * 10 }),
		slices.Values([]int{1, 2}), func(v int) bool { return v > 15 })
	if !slices.Equal(pass, []int{20}) || !slices.Equal(fail, []int{10}) {
		t.Errorf("Partition = (%v, %v), want ([20], [10])", pass, fail)
	}
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "banana", "avocado", "blueberry", "cherry"}
	g := GroupBy(core.Identity[string](), slices.Values(words),
		func(s string) byte { return s[0] })

	if g.Len() != 3 {
		t.Fatalf("分组数 = %d, want 3", g.Len())
	}
	// 键按首次出现顺序排列
	if !slices.Equal(g.Keys(), []byte{'a', 'b', 'c'}) {
		t.Errorf("Keys() = %v, want [a b c]", g.Keys())
	}
	if !slices.Equal(g.Get('a'), []string{"apple", "avocado"}) {
		t.Errorf("Get('a') = %v", g.Get('a'))
	}
	if !slices.Equal(g.Get('b'), []string{"banana", "blueberry"}) {
		t.Errorf("Get('b') = %v", g.Get('b'))
	}
}

func TestGroupByMod(t *testing.T) {
	g := GroupBy(core.Identity[int](), Range(1, 7), func(v int) int { return v % 3 })
	// 键按首次出现顺序：1, 2, 0
	if !slices.Equal(g.Keys(), []int{1, 2, 0}) {
		t.Errorf("Keys() = %v, want [1 2 0]", g.Keys())
	}
	if !slices.Equal(g.Get(0), []int{3, 6}) {
		t.Errorf("Get(0) = %v, want [3 6]", g.Get(0))
	}
	if !slices.Equal(g.Get(1), []int{1, 4}) {
		t.Errorf("Get(1) = %v, want [1 4]", g.Get(1))
	}
	if !slices.Equal(g.Get(2), []int{2, 5}) {
		t.Errorf("Get(2) = %v, want [2 5]", g.Get(2))
	}
}

func TestGroupByEmpty(t *testing.T) {
	g := GroupBy(core.Identity[int](), Range(0, 0), func(v int) int { return v })
	if g.Len() != 0 {
		t.Errorf("空源分组数 = %d, want 0", g.Len())
	}
}

func TestFrequencies(t *testing.T) {
	got := Frequencies(core.Identity[string](),
		slices.Values([]string{"a", "b", "a", "c", "a"}))
	want := map[string]int{"a": 3, "b": 1, "c": 1}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("Frequencies()[%q] = %d, want %d", k, got[k], n)
		}
	}
	if len(got) != len(want) {
		t.Errorf("Frequencies() 键数 = %d, want %d", len(got), len(want))
	}
}
