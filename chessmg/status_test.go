package chessmg_test

import (
	"testing"

	"magicbot/chessmg"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want chessmg.GameStatus
	}{
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chessmg.Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chessmg.Stalemate},
		{"fifty moves", "4k3/8/8/8/8/8/4P3/4K3 w - - 100 80", chessmg.DrawFiftyMove},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chessmg.DrawInsufficientMaterial},
		{"king and knight", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", chessmg.DrawInsufficientMaterial},
		{"same color bishops", "4k3/8/8/8/8/8/8/B1B1K3 w - - 0 1", chessmg.DrawInsufficientMaterial},
		{"bishop pair", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", chessmg.Ongoing},
		{"bishop and knight", "4k3/8/8/8/8/8/8/3NKB2 w - - 0 1", chessmg.Ongoing},
		{"initial", chessmg.FENStartPos, chessmg.Ongoing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := chessmg.NewPosition(tc.fen)
			if got := pos.Status(); got != tc.want {
				t.Fatalf("Status: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestCheckmateAndStalemateQueries(t *testing.T) {
	mate := chessmg.NewPosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !mate.InCheck() || !mate.IsCheckmate() || mate.IsStalemate() {
		t.Fatalf("fool's mate: check=%v mate=%v stalemate=%v", mate.InCheck(), mate.IsCheckmate(), mate.IsStalemate())
	}
	if n := len(mate.GenerateMoves()); n != 0 {
		t.Fatalf("fool's mate: %d legal moves", n)
	}

	stale := chessmg.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if stale.InCheck() || stale.IsCheckmate() || !stale.IsStalemate() {
		t.Fatalf("stalemate: check=%v mate=%v stalemate=%v", stale.InCheck(), stale.IsCheckmate(), stale.IsStalemate())
	}
}

func TestMateInOneFound(t *testing.T) {
	pos := chessmg.NewPosition("7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	m := mustMove(t, pos, "g6g7")
	pos.MakeMove(m)
	if !pos.IsCheckmate() {
		t.Fatalf("Qxg7 should mate: %s", pos.ToFEN())
	}
	pos.UnmakeMove(m)
	if pos.IsCheckmate() {
		t.Fatalf("position before Qxg7 reported as mate")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	pos := chessmg.NewPosition("")
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 2; round++ {
		if pos.IsRepetition(3) {
			t.Fatalf("round %d: repetition reported too early", round)
		}
		for _, s := range shuffle {
			pos.MakeMove(mustMove(t, pos, s))
		}
	}
	if !pos.IsRepetition(3) {
		t.Fatalf("threefold repetition not detected")
	}
	if pos.Status() != chessmg.DrawRepetition {
		t.Fatalf("Status: got %v want %v", pos.Status(), chessmg.DrawRepetition)
	}
}

func TestRepetitionResetByPawnMove(t *testing.T) {
	pos := chessmg.NewPosition("")
	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "e2e3", "e7e6", "g1f3", "g8f6", "f3g1", "f6g8"} {
		pos.MakeMove(mustMove(t, pos, s))
	}
	if pos.IsRepetition(3) {
		t.Fatalf("repetition counted across a pawn move")
	}
	if !pos.IsRepetition(2) {
		t.Fatalf("twofold repetition after the pawn moves not detected")
	}
}
