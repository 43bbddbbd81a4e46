package chessmg

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i set meaning square i (a1 = 0, h8 = 63) is a member.
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^Bitboard(0)

	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << 8
	Rank3 Bitboard = Rank1 << 16
	Rank6 Bitboard = Rank1 << 40
	Rank7 Bitboard = Rank1 << 48
	Rank8 Bitboard = Rank1 << 56

	notFileA Bitboard = ^FileA
	notFileH Bitboard = ^FileH
)

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Has reports whether sq is a member of the set.
func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

func (b *Bitboard) Set(sq Square)    { *b |= SquareBB(sq) }
func (b *Bitboard) Clear(sq Square)  { *b &^= SquareBB(sq) }
func (b *Bitboard) Toggle(sq Square) { *b ^= SquareBB(sq) }

// Count returns the number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Reverse mirrors the bit order, mapping a1 to h8.
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// LSB returns the lowest set square, or NoSquare for an empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare for an empty set.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square. The set must not be empty.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// More reports whether more than one square is set.
func (b Bitboard) More() bool { return b&(b-1) != 0 }

// String renders the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(Square(rank*8 + file)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func north(b Bitboard) Bitboard { return b << 8 }
func south(b Bitboard) Bitboard { return b >> 8 }
