package collect

import (
	"slices"
	"testing"
)

func TestIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"顺序与重复来自a", []int{1, 2, 2, 3}, []int{2, 3, 4}, []int{2, 2, 3}},
		{"无交集", []int{1, 2}, []int{3, 4}, []int{}},
		{"a为空", nil, []int{1}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersection(tt.a, tt.b)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Intersection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	got := Difference([]int{1, 2, 2, 3, 4}, []int{2, 4})
	want := []int{1, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Difference() = %v, want %v", got, want)
	}
}

func TestUnion(t *testing.T) {
	// a 全量保留（含重复），b 只追加未在 a 出现过的首个
	got := Union([]int{1, 2, 2}, []int{2, 3, 3, 4})
	want := []int{1, 2, 2, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestSymmetricDifference(t *testing.T) {
	got := SymmetricDifference([]int{1, 2, 3}, []int{2, 3, 4, 5})
	want := []int{1, 4, 5}
	if !slices.Equal(got, want) {
		t.Errorf("SymmetricDifference() = %v, want %v", got, want)
	}
}
