package engine

import (
	"testing"
	"time"

	"magicbot/chessmg"
)

func TestAllocateTime(t *testing.T) {
	start := chessmg.NewPosition("")
	endgame := chessmg.NewPosition("4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	ms := time.Millisecond

	cases := []struct {
		name      string
		pos       *chessmg.Position
		remaining time.Duration
		increment time.Duration
		want      time.Duration
	}{
		{"opening, no increment", start, 90_000 * ms, 0, 2000 * ms},
		{"endgame, no increment", endgame, 60_000 * ms, 0, 3000 * ms},
		{"opening with increment", start, 45_000 * ms, 2_000 * ms, 3000 * ms},
		{"panic uses the increment", start, 800 * ms, 1_000 * ms, 560 * ms},
		{"ceiling by fraction", endgame, 1_000 * ms, 5_000 * ms, 700 * ms},
		{"floor", start, 40 * ms, 0, 5 * ms},
		{"no clock", start, 0, 0, 5 * ms},
	}
	for _, tc := range cases {
		if got := AllocateTime(tc.pos, tc.remaining, tc.increment); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestAllocateTimeNeverExceedsClock(t *testing.T) {
	pos := chessmg.NewPosition("")
	for rem := 1; rem < 5000; rem += 37 {
		remaining := time.Duration(rem) * time.Millisecond
		got := AllocateTime(pos, remaining, 3*time.Second)
		if got < minMoveMs*time.Millisecond {
			t.Fatalf("remaining %v: budget %v below the floor", remaining, got)
		}
		if got > minMoveMs*time.Millisecond && float64(got) > float64(remaining)*maxFrac {
			t.Fatalf("remaining %v: budget %v above %v of the clock", remaining, got, maxFrac)
		}
	}
}

func TestEstimateMovesRemaining(t *testing.T) {
	if got := estimateMovesRemaining(TotalPhase); got != 45 {
		t.Fatalf("full material: got %d want 45", got)
	}
	if got := estimateMovesRemaining(0); got != 20 {
		t.Fatalf("bare kings: got %d want 20", got)
	}
}
