package core

import "testing"

func TestStepTag(t *testing.T) {
	c := Cont(42)
	if !c.IsContinue() || c.IsStop() {
		t.Fatalf("Cont(42) 标签错误: %v", c)
	}
	if c.Unwrap() != 42 {
		t.Fatalf("Unwrap = %d, want 42", c.Unwrap())
	}

	s := Stop(42)
	if !s.IsStop() || s.IsContinue() {
		t.Fatalf("Stop(42) 标签错误: %v", s)
	}
	if s.Unwrap() != 42 {
		t.Fatalf("Unwrap = %d, want 42", s.Unwrap())
	}
}

func TestStepMap(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if got := Cont(21).Map(double); !got.IsContinue() || got.Unwrap() != 42 {
		t.Errorf("Cont(21).Map = %v, want Continue(42)", got)
	}
	// Map 保留 Stop 标签
	if got := Stop(21).Map(double); !got.IsStop() || got.Unwrap() != 42 {
		t.Errorf("Stop(21).Map = %v, want Stop(42)", got)
	}
}

func TestMapStep(t *testing.T) {
	itoa := func(x int) string {
		return string(rune('a' + x))
	}
	if got := MapStep(Cont(1), itoa); !got.IsContinue() || got.Unwrap() != "b" {
		t.Errorf("MapStep(Cont(1)) = %v", got)
	}
	if got := MapStep(Stop(2), itoa); !got.IsStop() || got.Unwrap() != "c" {
		t.Errorf("MapStep(Stop(2)) = %v", got)
	}
}

func TestStepBindShortCircuit(t *testing.T) {
	called := false
	f := func(x int) Step[int] {
		called = true
		return Cont(x * 2)
	}

	if got := Stop(7).Bind(f); !got.IsStop() || got.Unwrap() != 7 {
		t.Errorf("Stop(7).Bind = %v, want Stop(7)", got)
	}
	if called {
		t.Error("Stop 分支不应调用 f")
	}
}

// TestStepMonadLaws 验证单子三定律。
func TestStepMonadLaws(t *testing.T) {
	f := func(x int) Step[int] { return Cont(x * 2) }
	g := func(x int) Step[int] { return Cont(x + 10) }
	h := func(x int) Step[int] { return Stop(x - 1) }

	// 左单位元：Cont(x).Bind(f) == f(x)
	for _, x := range []int{0, 1, -3, 42} {
		if Cont(x).Bind(f) != f(x) {
			t.Errorf("左单位元失败: x=%d", x)
		}
		if Cont(x).Bind(h) != h(x) {
			t.Errorf("左单位元失败(h): x=%d", x)
		}
	}

	// 右单位元：m.Bind(Cont) == m
	for _, m := range []Step[int]{Cont(5), Stop(5)} {
		if m.Bind(Cont[int]) != m {
			t.Errorf("右单位元失败: m=%v", m)
		}
	}

	// 结合律：m.Bind(f).Bind(g) == m.Bind(x => f(x).Bind(g))
	for _, m := range []Step[int]{Cont(5), Stop(5), Cont(-1)} {
		for _, f1 := range []func(int) Step[int]{f, h} {
			left := m.Bind(f1).Bind(g)
			right := m.Bind(func(x int) Step[int] { return f1(x).Bind(g) })
			if left != right {
				t.Errorf("结合律失败: m=%v left=%v right=%v", m, left, right)
			}
		}
	}
}

func TestStepString(t *testing.T) {
	if got := Cont(1).String(); got != "Continue(1)" {
		t.Errorf("String = %q", got)
	}
	if got := Stop(1).String(); got != "Stop(1)" {
		t.Errorf("String = %q", got)
	}
}
