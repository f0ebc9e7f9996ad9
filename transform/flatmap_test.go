package transform

import (
	"slices"
	"testing"

	"github.com/rushteam/flowkit/collect"
	"github.com/rushteam/flowkit/core"
)

func TestFlatMap(t *testing.T) {
	tests := []struct {
		name string
		f    func(int) []int
		src  []int
		want []int
	}{
		{"复制展开", func(v int) []int { return []int{v, v} }, []int{1, 2}, []int{1, 1, 2, 2}},
		{"空展开吸收", func(v int) []int {
			if v%2 == 0 {
				return nil
			}
			return []int{v}
		}, []int{1, 2, 3}, []int{1, 3}},
		{"变长展开", func(v int) []int { return make([]int, v) }, []int{0, 2, 1}, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect.ToSlice(FlatMap(tt.f), slices.Values(tt.src))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FlatMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFlatMapNestedStop 下游 Take 在子序列中途早停：剩余子元素被丢弃。
func TestFlatMapNestedStop(t *testing.T) {
	op := core.Compose[int, int, int](
		FlatMap(func(v int) []int { return []int{v, v * 10, v * 100} }),
		Take[int](4),
	)
	pulled := 0
	got := collect.ToSlice(op, countingSeq(1, 100, &pulled))
	want := []int{1, 10, 100, 2}
	if !slices.Equal(got, want) {
		t.Errorf("FlatMap|Take = %v, want %v", got, want)
	}
	// 第二个源元素的子序列只转发了一个就停了，第三个源元素未被消费
	if pulled != 2 {
		t.Errorf("消费源元素数 = %d, want 2", pulled)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		size int
		src  []int
		want [][]int
	}{
		{"整除", 2, []int{1, 2, 3, 4}, [][]int{{1, 2}, {3, 4}}},
		{"残组丢弃", 3, []int{1, 2, 3, 4, 5}, [][]int{{1, 2, 3}}},
		{"不足一组", 5, []int{1, 2}, nil},
		{"size为一", 1, []int{1, 2}, [][]int{{1}, {2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Chunk[int](tt.size)
			if err != nil {
				t.Fatalf("Chunk(%d) error = %v", tt.size, err)
			}
			got := collect.ToSlice(op, slices.Values(tt.src))
			if len(got) != len(tt.want) {
				t.Fatalf("Chunk(%d) = %v, want %v", tt.size, got, tt.want)
			}
			for i := range tt.want {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("Chunk(%d)[%d] = %v, want %v", tt.size, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestChunkInvalidSize size < 1 属于配置错误，构造期立即失败。
func TestChunkInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Chunk[int](size); !core.IsInvalidInput(err) {
			t.Errorf("Chunk(%d) 期望 INVALID_INPUT，得到 %v", size, err)
		}
	}
}

func TestMustChunkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustChunk(0) 应当 panic")
		}
	}()
	MustChunk[int](0)
}

// TestChunkBufferIsolation 转发出去的组是拷贝，不受后续缓冲复用影响。
func TestChunkBufferIsolation(t *testing.T) {
	got := collect.ToSlice(MustChunk[int](2), slices.Values([]int{1, 2, 3, 4}))
	if !slices.Equal(got[0], []int{1, 2}) {
		t.Errorf("首组被后续写入污染: %v", got[0])
	}
}

func TestInterpose(t *testing.T) {
	tests := []struct {
		name string
		src  []string
		want []string
	}{
		{"多元素", []string{"a", "b", "c"}, []string{"a", ",", "b", ",", "c"}},
		{"单元素", []string{"a"}, []string{"a"}},
		{"空源", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect.ToSlice(Interpose(","), slices.Values(tt.src))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Interpose() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestInterposeStopOnSeparator 分隔符触发下游 Stop 时，其后的元素不再转发。
func TestInterposeStopOnSeparator(t *testing.T) {
	op := core.Compose[string, string, string](Interpose("-"), Take[string](2))
	got := collect.ToSlice(op, slices.Values([]string{"a", "b", "c"}))
	want := []string{"a", "-"}
	if !slices.Equal(got, want) {
		t.Errorf("Interpose|Take(2) = %v, want %v", got, want)
	}
}

func TestRepeatEach(t *testing.T) {
	tests := []struct {
		name string
		n    int
		src  []int
		want []int
	}{
		{"重复两次", 2, []int{1, 2}, []int{1, 1, 2, 2}},
		{"n为一", 1, []int{1, 2}, []int{1, 2}},
		{"n为零吸收", 0, []int{1, 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect.ToSlice(RepeatEach[int](tt.n), slices.Values(tt.src))
			if !slices.Equal(got, tt.want) {
				t.Errorf("RepeatEach(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

// TestRepeatEachStopMidRepeat 重复中途遇到下游 Stop 即中止剩余重复。
func TestRepeatEachStopMidRepeat(t *testing.T) {
	op := core.Compose[int, int, int](RepeatEach[int](3), Take[int](4))
	got := collect.ToSlice(op, slices.Values([]int{1, 2, 3}))
	want := []int{1, 1, 1, 2}
	if !slices.Equal(got, want) {
		t.Errorf("RepeatEach(3)|Take(4) = %v, want %v", got, want)
	}
}
