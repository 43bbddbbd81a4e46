package chessmg_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"magicbot/chessmg"
)

func ourMoves(pos *chessmg.Position) []string {
	var out []string
	for _, m := range pos.GenerateMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	var out []string
	for _, m := range board.GenerateLegalMoves() {
		out = append(out, strings.ToLower(m.String()))
	}
	sort.Strings(out)
	return out
}

// Random games from the start position, comparing the legal move list with
// dragontoothmg at every ply.
func TestMovegenAgreesWithDragontooth(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))
	games := 30
	if testing.Short() {
		games = 5
	}
	for game := 0; game < games; game++ {
		pos := chessmg.NewPosition("")
		for ply := 0; ply < 150; ply++ {
			fen := pos.ToFEN()
			got := ourMoves(pos)
			want := dragontoothMoves(fen)
			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Fatalf("game %d ply %d %s:\n got  %v\n want %v", game, ply, fen, got, want)
			}
			moves := pos.GenerateMoves()
			if len(moves) == 0 || pos.IsDrawBy50() {
				break
			}
			pos.MakeMove(moves[rnd.Intn(len(moves))])
		}
	}
}

func TestSliderAttacksAgreeWithDragontooth(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 20000; i++ {
		sq := chessmg.Square(rnd.Intn(64))
		occ := rnd.Uint64() & rnd.Uint64()
		if got, want := uint64(chessmg.RookAttacks(sq, chessmg.Bitboard(occ))), dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("rook %s occ %x: got %x want %x", sq, occ, got, want)
		}
		if got, want := uint64(chessmg.BishopAttacks(sq, chessmg.Bitboard(occ))), dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("bishop %s occ %x: got %x want %x", sq, occ, got, want)
		}
	}
}

func TestMoveCountsAgreeWithNotnilChess(t *testing.T) {
	for _, tc := range perftSuite {
		opt, err := chess.FEN(tc.fen)
		if err != nil {
			t.Fatalf("%s: chess.FEN: %v", tc.name, err)
		}
		game := chess.NewGame(opt)
		var want []string
		for _, m := range game.ValidMoves() {
			want = append(want, chess.UCINotation{}.Encode(game.Position(), m))
		}
		sort.Strings(want)
		got := ourMoves(chessmg.NewPosition(tc.fen))
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Fatalf("%s:\n got  %v\n want %v", tc.name, got, want)
		}
	}
}
