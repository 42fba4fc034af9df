package game

import "testing"

func TestRandomSource_StaysInRange(t *testing.T) {
	src := NewRandomSource()
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		n := src.IntRange(MinSecret, MaxSecret+1)
		if n < MinSecret || n > MaxSecret {
			t.Fatalf("IntRange(1, 101) = %d, out of range", n)
		}
		seen[n] = true
	}
	if !seen[MinSecret] || !seen[MaxSecret] {
		t.Errorf("extremes never drawn in 10000 samples: 1=%v 100=%v", seen[MinSecret], seen[MaxSecret])
	}
}
