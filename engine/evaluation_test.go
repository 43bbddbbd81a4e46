package engine

import (
	"testing"

	"magicbot/chessmg"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	if got := (MaterialEvaluator{}).Evaluate(chessmg.NewPosition("")); got != 0 {
		t.Fatalf("start position: got %d want 0", got)
	}
}

func TestEvaluateIsFromSideToMove(t *testing.T) {
	white := chessmg.NewPosition("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := chessmg.NewPosition("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	e := MaterialEvaluator{}
	w, b := e.Evaluate(white), e.Evaluate(black)
	if w <= QueenValue-100 || w != -b {
		t.Fatalf("queen up: white to move %d, black to move %d", w, b)
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	// Each pair is the same position with colors and ranks swapped.
	pairs := [][2]string{
		{kiwipete, "r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R b KQkq - 0 1"},
		{"4k3/8/3p4/2n1p3/4P3/2N2B2/8/4K3 w - - 0 1", "4k3/8/2n2b2/4p3/2N1P3/3P4/8/4K3 b - - 0 1"},
	}
	e := MaterialEvaluator{}
	for _, p := range pairs {
		a, b := e.Evaluate(chessmg.NewPosition(p[0])), e.Evaluate(chessmg.NewPosition(p[1]))
		if a != b {
			t.Fatalf("%s: got %d, mirrored %d", p[0], a, b)
		}
	}
}

func TestEvaluatorFunc(t *testing.T) {
	var e Evaluator = EvaluatorFunc(func(pos *chessmg.Position) int { return pos.HalfmoveClock() })
	if got := e.Evaluate(chessmg.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 7 20")); got != 7 {
		t.Fatalf("got %d want 7", got)
	}
}

func TestGetPiecePhase(t *testing.T) {
	if got := GetPiecePhase(chessmg.NewPosition("")); got != TotalPhase {
		t.Fatalf("start: got %d want %d", got, TotalPhase)
	}
	if got := GetPiecePhase(chessmg.NewPosition("4k3/8/8/8/8/8/8/2RQK3 w - - 0 1")); got != RookPhase+QueenPhase {
		t.Fatalf("rook and queen: got %d want %d", got, RookPhase+QueenPhase)
	}
	if got := GetPiecePhase(chessmg.NewPosition("k7/8/8/8/8/4Q3/1QQQQ3/4KQQ1 w - - 0 1")); got != TotalPhase {
		t.Fatalf("seven queens: got %d want capped %d", got, TotalPhase)
	}
}
