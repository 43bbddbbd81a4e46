package bench

import (
	"testing"

	"magicbot/chessmg"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func benchGenerateMoves(b *testing.B, fen string) {
	pos, err := chessmg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]chessmg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GenerateMovesInto(buf)
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, chessmg.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, kiwipete)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	benchGenerateMoves(b, "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkGenerateCaptures_Kiwipete(b *testing.B) {
	pos := chessmg.NewPosition(kiwipete)
	buf := make([]chessmg.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GenerateCapturesInto(buf)
	}
}

func BenchmarkMakeUnmake_Kiwipete(b *testing.B) {
	pos := chessmg.NewPosition(kiwipete)
	moves := pos.GenerateMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		pos.MakeMove(m)
		pos.UnmakeMove(m)
	}
}

func BenchmarkRookAttacks(b *testing.B) {
	occ := chessmg.NewPosition(kiwipete).Occupied()
	var sink chessmg.Bitboard
	for i := 0; i < b.N; i++ {
		sink ^= chessmg.RookAttacks(chessmg.Square(i&63), occ)
	}
	_ = sink
}
