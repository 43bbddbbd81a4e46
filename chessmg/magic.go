package chessmg

import (
	"math/bits"
	"math/rand"
)

// magicEntry maps an occupancy to a slider attack set:
// attacks[((occ & mask) * magic) >> shift].
type magicEntry struct {
	mask    Bitboard
	magic   uint64
	shift   uint
	attacks []Bitboard
}

func (m *magicEntry) index(occ Bitboard) uint64 {
	return (uint64(occ&m.mask) * m.magic) >> m.shift
}

var rookMagics [64]magicEntry
var bishopMagics [64]magicEntry

// Fixed seed so that table construction is reproducible between runs.
const magicSeed = 728

// RookAttacks returns the rook attack set from sq for the given occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occ)]
}

// BishopAttacks returns the bishop attack set from sq for the given occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occ)]
}

func initMagics() {
	rnd := rand.New(rand.NewSource(magicSeed))
	for sq := Square(0); sq < 64; sq++ {
		rookMagics[sq] = findMagic(sq, relevantMask(sq, rookDirs), rookDirs, rnd)
		bishopMagics[sq] = findMagic(sq, relevantMask(sq, bishopDirs), bishopDirs, rnd)
	}
}

// relevantMask is the empty-board attack set minus the board edges the ray ends on,
// since a piece on the last square of a ray never changes the attack set.
func relevantMask(sq Square, dirs [4][2]int) Bitboard {
	edges := ((Rank1 | Rank8) &^ (Rank1 << (8 * uint(sq.Rank())))) |
		((FileA | FileH) &^ (FileA << uint(sq.File())))
	return slidingAttacks(sq, 0, dirs) &^ edges
}

// findMagic enumerates every blocker subset of mask, ray-traces its attack set, and
// searches sparse random multipliers until one maps all subsets without a destructive collision.
func findMagic(sq Square, mask Bitboard, dirs [4][2]int, rnd *rand.Rand) magicEntry {
	n := mask.Count()
	size := 1 << n
	occs := make([]Bitboard, 0, size)
	atts := make([]Bitboard, 0, size)

	// Carry-Rippler subset walk
	var sub Bitboard
	for {
		occs = append(occs, sub)
		atts = append(atts, slidingAttacks(sq, sub, dirs))
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}

	entry := magicEntry{mask: mask, shift: uint(64 - n)}
	table := make([]Bitboard, size)
	epoch := make([]int, size)
	for attempt := 1; ; attempt++ {
		magic := rnd.Uint64() & rnd.Uint64() & rnd.Uint64()
		if bits.OnesCount64((uint64(mask)*magic)>>56) < 6 {
			continue
		}
		entry.magic = magic
		ok := true
		for i, occ := range occs {
			idx := entry.index(occ)
			if epoch[idx] < attempt {
				epoch[idx] = attempt
				table[idx] = atts[i]
			} else if table[idx] != atts[i] {
				ok = false
				break
			}
		}
		if ok {
			entry.attacks = table
			return entry
		}
	}
}
