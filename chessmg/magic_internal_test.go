package chessmg

import (
	"math/rand"
	"testing"
)

func TestMagicMatchesRayTracing(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for sq := Square(0); sq < 64; sq++ {
		for i := 0; i < 500; i++ {
			occ := Bitboard(rnd.Uint64() & rnd.Uint64())
			if got, want := RookAttacks(sq, occ), slidingAttacks(sq, occ, rookDirs); got != want {
				t.Fatalf("rook %s occ %x: got\n%vwant\n%v", sq, uint64(occ), got, want)
			}
			if got, want := BishopAttacks(sq, occ), slidingAttacks(sq, occ, bishopDirs); got != want {
				t.Fatalf("bishop %s occ %x: got\n%vwant\n%v", sq, uint64(occ), got, want)
			}
		}
	}
}

func TestRelevantMaskSizes(t *testing.T) {
	if n := rookMagics[A1].mask.Count(); n != 12 {
		t.Fatalf("rook a1 mask bits: got %d want 12", n)
	}
	if n := rookMagics[MakeSquare(3, 3)].mask.Count(); n != 10 {
		t.Fatalf("rook d4 mask bits: got %d want 10", n)
	}
	if n := bishopMagics[MakeSquare(3, 3)].mask.Count(); n != 9 {
		t.Fatalf("bishop d4 mask bits: got %d want 9", n)
	}
}

func TestBetweenAndLine(t *testing.T) {
	a1, h8 := A1, H8
	if got := Between(a1, h8).Count(); got != 6 {
		t.Fatalf("between a1 h8: got %d squares want 6", got)
	}
	if got := Line(MakeSquare(2, 2), MakeSquare(4, 4)); got != Line(a1, h8) {
		t.Fatalf("line c3 e5 should be the long diagonal")
	}
	if Between(a1, MakeSquare(1, 2)) != 0 || Line(a1, MakeSquare(1, 2)) != 0 {
		t.Fatalf("a1 and b3 are not aligned")
	}
	if !Aligned(E1, E8, MakeSquare(4, 4)) || Aligned(E1, E8, MakeSquare(3, 4)) {
		t.Fatalf("Aligned e1 e8")
	}
}

func TestLeaperTables(t *testing.T) {
	if got := KnightAttacks(A1).Count(); got != 2 {
		t.Fatalf("knight a1: got %d want 2", got)
	}
	if got := KingAttacks(MakeSquare(4, 4)).Count(); got != 8 {
		t.Fatalf("king e5: got %d want 8", got)
	}
	if got := PawnAttacks(White, H1); got != SquareBB(MakeSquare(6, 1)) {
		t.Fatalf("white pawn h1 attacks: got\n%v", got)
	}
	if got := PawnAttacks(Black, A8); got != SquareBB(MakeSquare(1, 6)) {
		t.Fatalf("black pawn a8 attacks: got\n%v", got)
	}
}

func TestBitboardOps(t *testing.T) {
	var b Bitboard
	b.Set(E1)
	b.Set(H8)
	b.Toggle(A1)
	if b.Count() != 3 || b.LSB() != A1 || b.MSB() != H8 {
		t.Fatalf("set/toggle: %x", uint64(b))
	}
	b.Clear(H8)
	if b.Has(H8) {
		t.Fatalf("clear h8")
	}
	if got := SquareBB(A1).Reverse(); got != SquareBB(H8) {
		t.Fatalf("reverse a1: got %x", uint64(got))
	}
	if sq := b.PopLSB(); sq != A1 || b != SquareBB(E1) {
		t.Fatalf("PopLSB: got %s, left %x", sq, uint64(b))
	}
	if EmptyBB.LSB() != NoSquare {
		t.Fatalf("LSB of empty set")
	}
}
