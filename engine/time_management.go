package engine

import (
	"time"

	"magicbot/chessmg"
)

// Engine-side safety knobs
const (
	overheadMs    = 30   // reserve for caller and IO jitter
	minMoveMs     = 5    // never less than this
	maxFrac       = 0.7  // never spend >70% of remaining time
	panicThreshMs = 1000 // below this with an increment, live off the increment
	panicFrac     = 0.90 // use 90% of inc in panic
)

// AllocateTime returns how long to think on pos given the clock. The result is
// never below minMoveMs and never above the part of the clock left after the
// overhead and the maxFrac ceiling, unless that leaves less than minMoveMs.
func AllocateTime(pos *chessmg.Position, remaining, increment time.Duration) time.Duration {
	rem := int(remaining.Milliseconds())
	inc := int(increment.Milliseconds())
	if rem <= 0 {
		return minMoveMs * time.Millisecond
	}

	// Estimate moves left from phase
	movesLeft := estimateMovesRemaining(GetPiecePhase(pos)) // 20..45

	var moveTime int
	if inc > 0 && rem < panicThreshMs {
		// Panic: try to bank a little time
		moveTime = int(float64(inc) * panicFrac)
	} else {
		moveTime = rem/movesLeft + inc
	}

	ceiling := int(float64(rem) * maxFrac)
	if ceiling > rem-overheadMs {
		ceiling = rem - overheadMs
	}
	moveTime = clamp(moveTime, minMoveMs, max(ceiling, minMoveMs))
	return time.Duration(moveTime) * time.Millisecond
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/TotalPhase + 20 // result ∈ [20, 45]
}
