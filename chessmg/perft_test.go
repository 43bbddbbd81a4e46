package chessmg_test

import (
	"testing"

	"magicbot/chessmg"
)

type perftCase struct {
	name  string
	fen   string
	nodes []uint64 // index i holds the count for depth i+1
	short int      // deepest depth run under -short
}

var perftSuite = []perftCase{
	{"initial", chessmg.FENStartPos, []uint64{20, 400, 8902, 197281, 4865609}, 4},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862, 4085603}, 3},
	{"pos3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812, 43238, 674624}, 4},
	{"pos4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467, 422333}, 3},
	{"pos4 mirrored", "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", []uint64{6, 264, 9467, 422333}, 3},
	{"pos5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379, 2103487}, 3},
	{"pos6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079, 89890, 3894594}, 3},
	{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}, 2},
	{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}, 1},
	{"ep exposes king", "8/8/8/KPp4r/8/8/8/7k w - c6 0 2", []uint64{4}, 1},
	{"double check", "4k3/8/8/8/8/3nr3/8/4K3 w - - 0 1", []uint64{3}, 1},
}

func TestPerftSuite(t *testing.T) {
	for _, tc := range perftSuite {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := chessmg.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for i, want := range tc.nodes {
				depth := i + 1
				if testing.Short() && depth > tc.short {
					break
				}
				if got := chessmg.Perft(pos, depth); got != want {
					t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
				}
			}
			if err := pos.Validate(); err != nil {
				t.Fatalf("position corrupted after perft: %v", err)
			}
			if got := pos.ToFEN(); got != chessmg.NewPosition(tc.fen).ToFEN() {
				t.Fatalf("FEN changed after perft: %q", got)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := chessmg.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	div := chessmg.PerftDivide(pos, 2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want %d", len(div), 48)
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum: got %d want %d", sum, 2039)
	}
}
