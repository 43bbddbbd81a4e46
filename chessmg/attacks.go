package chessmg

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// pawnAttacks[color][sq] gives the squares a pawn of color attacks from sq.
var pawnAttacks [2][64]Bitboard

// betweenBB[a][b] holds the squares strictly between two aligned squares, lineBB[a][b]
// the whole rank, file or diagonal through both. Both are empty for unaligned pairs.
var betweenBB [64][64]Bitboard
var lineBB [64][64]Bitboard

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func init() {
	initLeaperTables()
	initMagics()
	initLineTables()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := Square(0); sq < 64; sq++ {
		knightAttacks[sq] = offsetsMask(sq, knightOffsets[:])
		kingAttacks[sq] = offsetsMask(sq, kingOffsets[:])

		b := SquareBB(sq)
		pawnAttacks[White][sq] = (b&notFileA)<<7 | (b&notFileH)<<9
		pawnAttacks[Black][sq] = (b&notFileH)>>7 | (b&notFileA)>>9
	}
}

func offsetsMask(sq Square, offsets [][2]int) Bitboard {
	var mask Bitboard
	for _, off := range offsets {
		r, f := sq.Rank()+off[0], sq.File()+off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			mask.Set(MakeSquare(f, r))
		}
	}
	return mask
}

func initLineTables() {
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			ab := SquareBB(a) | SquareBB(b)
			switch {
			case slidingAttacks(a, 0, rookDirs).Has(b):
				lineBB[a][b] = slidingAttacks(a, 0, rookDirs)&slidingAttacks(b, 0, rookDirs) | ab
				betweenBB[a][b] = slidingAttacks(a, SquareBB(b), rookDirs) & slidingAttacks(b, SquareBB(a), rookDirs)
			case slidingAttacks(a, 0, bishopDirs).Has(b):
				lineBB[a][b] = slidingAttacks(a, 0, bishopDirs)&slidingAttacks(b, 0, bishopDirs) | ab
				betweenBB[a][b] = slidingAttacks(a, SquareBB(b), bishopDirs) & slidingAttacks(b, SquareBB(a), bishopDirs)
			}
		}
	}
}

// slidingAttacks ray-traces from sq in each direction, stopping at (and including) the first blocker.
func slidingAttacks(sq Square, occ Bitboard, dirs [4][2]int) Bitboard {
	var att Bitboard
	for _, d := range dirs {
		r, f := sq.Rank()+d[0], sq.File()+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			s := MakeSquare(f, r)
			att.Set(s)
			if occ.Has(s) {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return att
}

func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }
func KingAttacks(sq Square) Bitboard   { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c attacks from sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// Between returns the squares strictly between a and b, empty when they are not aligned.
func Between(a, b Square) Bitboard { return betweenBB[a][b] }

// Line returns the full line through a and b, empty when they are not aligned.
func Line(a, b Square) Bitboard { return lineBB[a][b] }

func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// Aligned reports whether the three squares share a rank, file or diagonal.
func Aligned(a, b, c Square) bool { return lineBB[a][b].Has(c) }
