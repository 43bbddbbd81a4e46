package engine

import (
	"sync/atomic"

	"magicbot/chessmg"
)

const (
	// Flags
	AlphaFlag = iota
	BetaFlag
	ExactFlag
)

// DefaultTTEntries is the slot count used when Options leaves it zero.
const DefaultTTEntries = 1 << 20

// TTEntry is the decoded content of one slot.
type TTEntry struct {
	Hash  uint64
	Depth int
	Move  chessmg.Move
	Score int
	Flag  int
}

// A slot stores key^data next to data. A torn write from a concurrent
// searcher leaves a pair that no longer decodes to the probed key.
type ttSlot struct {
	check atomic.Uint64
	data  atomic.Uint64
}

// TransTable is a fixed-size, always-replace hash table keyed by Zobrist hash.
type TransTable struct {
	slots []ttSlot
	mask  uint64
}

// NewTransTable allocates a table with entries rounded down to a power of two (minimum 1).
func NewTransTable(entries int) *TransTable {
	size := 1
	for size<<1 <= entries {
		size <<= 1
	}
	return &TransTable{slots: make([]ttSlot, size), mask: uint64(size - 1)}
}

// Size returns the number of slots.
func (tt *TransTable) Size() int { return len(tt.slots) }

// layout: move 0-15, depth 16-23, flag 24-31, score 32-63
func packEntry(move chessmg.Move, depth, score, flag int) uint64 {
	return uint64(move) |
		uint64(uint8(depth))<<16 |
		uint64(uint8(flag))<<24 |
		uint64(uint32(int32(score)))<<32
}

func unpackEntry(hash, data uint64) TTEntry {
	return TTEntry{
		Hash:  hash,
		Move:  chessmg.Move(data),
		Depth: int(uint8(data >> 16)),
		Flag:  int(uint8(data >> 24)),
		Score: int(int32(uint32(data >> 32))),
	}
}

// Probe returns the entry stored for hash, if any.
func (tt *TransTable) Probe(hash uint64) (TTEntry, bool) {
	slot := &tt.slots[hash&tt.mask]
	data := slot.data.Load()
	check := slot.check.Load()
	// Stored entries always have depth >= 1, so data is never zero.
	if data == 0 || check^data != hash {
		return TTEntry{}, false
	}
	return unpackEntry(hash, data), true
}

// Store overwrites the slot for hash.
func (tt *TransTable) Store(hash uint64, depth int, move chessmg.Move, score int, flag int) {
	data := packEntry(move, clamp(depth, 1, 255), score, flag)
	slot := &tt.slots[hash&tt.mask]
	slot.data.Store(data)
	slot.check.Store(hash ^ data)
}

// Clear empties every slot.
func (tt *TransTable) Clear() {
	for i := range tt.slots {
		tt.slots[i].data.Store(0)
		tt.slots[i].check.Store(0)
	}
}

// Hashfull returns occupancy in permille, sampled over the first 1000 slots.
func (tt *TransTable) Hashfull() int {
	n := len(tt.slots)
	if n > 1000 {
		n = 1000
	}
	used := 0
	for i := 0; i < n; i++ {
		if tt.slots[i].data.Load() != 0 {
			used++
		}
	}
	return used * 1000 / n
}

// useEntry decides whether a probed entry settles the node outright.
// Exact scores are returned as is; bounds only when they fall outside the window.
func useEntry(entry TTEntry, depth, alpha, beta int) (usable bool, score int) {
	if entry.Depth < depth {
		return false, 0
	}
	switch entry.Flag {
	case ExactFlag:
		return true, entry.Score
	case AlphaFlag:
		if entry.Score <= alpha {
			return true, alpha
		}
	case BetaFlag:
		if entry.Score >= beta {
			return true, beta
		}
	}
	return false, 0
}
