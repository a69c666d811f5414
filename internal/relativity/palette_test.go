package relativity

import "testing"

func TestColorFor_RestFrame(t *testing.T) {
	t.Parallel()
	if got := ColorFor(0); got != RestColor {
		t.Errorf("ColorFor(0) = %q, want rest color %q", got, RestColor)
	}
}

func TestColorFor_Wraparound(t *testing.T) {
	t.Parallel()
	if ColorFor(21) != ColorFor(1) {
		t.Errorf("ColorFor(21) = %q, want ColorFor(1) = %q", ColorFor(21), ColorFor(1))
	}
	if ColorFor(20) == ColorFor(1) {
		t.Error("ColorFor(20) should differ from ColorFor(1)")
	}
}

func TestColorFor_Distinct(t *testing.T) {
	t.Parallel()
	seen := make(map[string]int)
	for i := 1; i <= 20; i++ {
		c := ColorFor(i)
		if prev, ok := seen[c]; ok {
			t.Errorf("ColorFor(%d) = %q collides with index %d", i, c, prev)
		}
		seen[c] = i
		if c == RestColor {
			t.Errorf("ColorFor(%d) = rest color", i)
		}
	}
}

func TestColorFor_Deterministic(t *testing.T) {
	t.Parallel()
	for i := 0; i < 45; i++ {
		if ColorFor(i) != ColorFor(i) {
			t.Fatalf("ColorFor(%d) is not stable", i)
		}
	}
}
