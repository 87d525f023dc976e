package game

import "testing"

func TestNewRandomIsReproducible(t *testing.T) {
	a := NewRandom(12345)
	b := NewRandom(12345)

	for i := 0; i < 50; i++ {
		if x, y := a.Random2(1000), b.Random2(1000); x != y {
			t.Fatalf("expected the same roll at %d, got %d and %d", i, x, y)
		}
	}
}

func TestRandomRanges(t *testing.T) {
	rng := NewRandom(3)
	for i := 0; i < 200; i++ {
		if v := rng.Random2(6); v < 0 || v >= 6 {
			t.Fatalf("expected Random2(6) in [0,6), got %d", v)
		}
		if v := rng.Random2Avg(19, 2); v < 0 || v > 19 {
			t.Fatalf("expected Random2Avg(19, 2) in [0,19], got %d", v)
		}
	}
	if rng.Random2(0) != 0 || rng.Random2(1) != 0 {
		t.Fatalf("expected degenerate ranges to roll 0")
	}
	if !rng.OneChanceIn(1) {
		t.Fatalf("expected one chance in one to always hit")
	}
}

func TestDivRandRound(t *testing.T) {
	if got := divRandRound(8, 4, fixedRandom{roll: 3}); got != 2 {
		t.Fatalf("expected exact division, got %d", got)
	}
	if got := divRandRound(9, 4, fixedRandom{roll: 0}); got != 3 {
		t.Fatalf("expected a low roll to round up, got %d", got)
	}
	if got := divRandRound(9, 4, fixedRandom{roll: 3}); got != 2 {
		t.Fatalf("expected a high roll to round down, got %d", got)
	}
}

func TestXChanceInY(t *testing.T) {
	rng := fixedRandom{roll: 5}
	if xChanceInY(rng, 0, 10) {
		t.Fatalf("expected zero chance to miss")
	}
	if !xChanceInY(rng, 10, 10) {
		t.Fatalf("expected certainty to hit")
	}
	if xChanceInY(rng, 5, 10) || !xChanceInY(rng, 6, 10) {
		t.Fatalf("expected the roll to be compared against x")
	}
}

func TestStepdown(t *testing.T) {
	tests := []struct {
		value, stepping, first, last, ceiling int
		want                                  int
	}{
		{value: 10, stepping: 9, first: 18, last: 45, ceiling: 100, want: 10},
		{value: 30, stepping: 9, first: 18, last: 45, ceiling: 100, want: 24},
		{value: 30, stepping: 6, first: 6, last: 12, ceiling: 12, want: 12},
		{value: 30, stepping: 6, first: 6, last: 12, ceiling: -1, want: 15},
	}
	for _, tc := range tests {
		got := stepdown(tc.value, tc.stepping, tc.first, tc.last, tc.ceiling)
		if got != tc.want {
			t.Fatalf("stepdown(%d, %d, %d, %d, %d): expected %d, got %d",
				tc.value, tc.stepping, tc.first, tc.last, tc.ceiling, tc.want, got)
		}
	}
}
