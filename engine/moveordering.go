package engine

import (
	"magicbot/chessmg"
)

type move struct {
	move  chessmg.Move
	score int32
}

type moveList struct {
	moves []move
}

/*
	Move ordering offsets!
	- The hash move comes first; it is the best move of the previous iteration at the root.
	- Captures and promotions are scored 10*victim - attacker (+ promoted piece) on top of captureOffset,
	  so every capture is tried before any quiet move, even a losing one.
	- Killers are the quiet moves that cut off at this ply elsewhere in the tree.
	- Everything that lands on a square the opponent attacks loses the value of the mover.
*/
const (
	pvOffset      int32 = 25000
	captureOffset int32 = 15000
	killerOffset  int32 = 2000
)

// Piece values for ordering only. The king gets a large value so that king
// moves into attacked squares sort last.
var orderValues = [7]int32{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, 1000}

// scoreMoves fills list from moves. enemyAttacks is every square the opponent
// attacks in the current position.
func scoreMoves(pos *chessmg.Position, moves []chessmg.Move, list *moveList, hashMove chessmg.Move, killers *KillerStruct, ply int) {
	enemyAttacks := pos.AttackedBy(pos.SideToMove().Other())
	list.moves = list.moves[:0]
	for _, m := range moves {
		list.moves = append(list.moves, move{move: m, score: scoreMove(pos, m, hashMove, killers, ply, enemyAttacks)})
	}
}

func scoreMove(pos *chessmg.Position, m chessmg.Move, hashMove chessmg.Move, killers *KillerStruct, ply int, enemyAttacks chessmg.Bitboard) int32 {
	if m == hashMove {
		return pvOffset
	}
	mover := orderValues[pos.PieceAt(m.From()).Type()]
	victim := pos.PieceAt(m.To()).Type()
	if m.IsEnPassant() {
		victim = chessmg.PieceTypePawn
	}

	var score int32
	tactical := false
	if victim != chessmg.PieceTypeNone {
		score += 10*orderValues[victim] - mover
		tactical = true
	}
	if m.IsPromotion() {
		score += orderValues[m.PromotionType()]
		tactical = true
	}
	if enemyAttacks.Has(m.To()) {
		score -= mover
	}

	switch {
	case tactical:
		score += captureOffset
	case killers != nil && killers.isKiller(m, ply):
		score += killerOffset
	}
	return score
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}
