package engine

import (
	"magicbot/chessmg"
)

type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]chessmg.Move
}

func (k *KillerStruct) InsertKiller(move chessmg.Move, ply int) {
	if ply > MaxDepth {
		return
	}
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

func (k *KillerStruct) isKiller(move chessmg.Move, ply int) bool {
	if ply > MaxDepth {
		return false
	}
	return move == k.KillerMoves[ply][0] || move == k.KillerMoves[ply][1]
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for depth := 0; depth < MaxDepth+1; depth++ {
		k.KillerMoves[depth][0] = chessmg.NullMove
		k.KillerMoves[depth][1] = chessmg.NullMove
	}
}
