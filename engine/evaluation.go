package engine

import (
	"magicbot/chessmg"
)

// Evaluator scores a position statically. Positive scores favor the side to move.
type Evaluator interface {
	Evaluate(pos *chessmg.Position) int
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(pos *chessmg.Position) int

func (f EvaluatorFunc) Evaluate(pos *chessmg.Position) int { return f(pos) }

const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

// Indexed by chessmg.PieceType. The king carries no material.
var PieceValues = [7]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, 0}

// Piece-square bonuses from White's point of view, a1 first.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var pieceSquareTables = [7]*[64]int{nil, &pawnPST, &knightPST, &bishopPST, &rookPST, &queenPST, &kingPST}

// MaterialEvaluator counts material plus piece-square bonuses. Black's
// bonuses are read from the vertically mirrored square.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(pos *chessmg.Position) int {
	var score [2]int
	for c := chessmg.White; c <= chessmg.Black; c++ {
		for pt := chessmg.PieceTypePawn; pt <= chessmg.PieceTypeKing; pt++ {
			bb := pos.Pieces(c, pt)
			score[c] += PieceValues[pt] * bb.Count()
			pst := pieceSquareTables[pt]
			for bb != 0 {
				sq := bb.PopLSB()
				if c == chessmg.Black {
					sq = sq.Mirror()
				}
				score[c] += pst[sq]
			}
		}
	}
	us := pos.SideToMove()
	return score[us] - score[us.Other()]
}

const (
	KnightPhase = 1
	BishopPhase = 1
	RookPhase   = 2
	QueenPhase  = 4
	TotalPhase  = KnightPhase*4 + BishopPhase*4 + RookPhase*4 + QueenPhase*2
)

// GetPiecePhase returns the non-pawn material phase, 24 at the start down to 0
// with only kings and pawns left. Promotions can push the raw sum past 24; it is capped.
func GetPiecePhase(pos *chessmg.Position) int {
	phase := pos.ByType(chessmg.PieceTypeKnight).Count()*KnightPhase +
		pos.ByType(chessmg.PieceTypeBishop).Count()*BishopPhase +
		pos.ByType(chessmg.PieceTypeRook).Count()*RookPhase +
		pos.ByType(chessmg.PieceTypeQueen).Count()*QueenPhase
	return clamp(phase, 0, TotalPhase)
}
