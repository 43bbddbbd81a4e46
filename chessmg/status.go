package chessmg

// DarkSquares is the set of dark squares (a1 is dark).
const DarkSquares Bitboard = 0xAA55AA55AA55AA55

// GameStatus classifies a position for the game driver.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawInsufficientMaterial
	DrawRepetition
)

func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw by fifty-move rule"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	case DrawRepetition:
		return "draw by repetition"
	}
	return "ongoing"
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.InCheck() && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move has no legal move and is not in check.
func (p *Position) IsStalemate() bool { return !p.InCheck() && !p.HasLegalMoves() }

// IsDrawBy50 reports a 50-move rule draw (the clock counts half-moves).
func (p *Position) IsDrawBy50() bool { return p.halfmoveClock >= 100 }

// IsInsufficientMaterial reports positions where neither side can force mate:
// no pawns, rooks or queens, and no side holding bishops on both colors or a
// bishop together with a knight.
func (p *Position) IsInsufficientMaterial() bool {
	if p.byType[PieceTypePawn]|p.byType[PieceTypeRook]|p.byType[PieceTypeQueen] != 0 {
		return false
	}
	for c := White; c <= Black; c++ {
		bishops := p.Pieces(c, PieceTypeBishop)
		if bishops&DarkSquares != 0 && bishops&^DarkSquares != 0 {
			return false
		}
		if bishops != 0 && p.Pieces(c, PieceTypeKnight) != 0 {
			return false
		}
	}
	return true
}

// IsRepetition reports whether the current position has occurred at least n
// times (counting itself) since the last irreversible move.
func (p *Position) IsRepetition(n int) bool {
	count := 1
	h := len(p.history)
	limit := p.halfmoveClock
	if limit > h {
		limit = h
	}
	for i := 2; i <= limit; i += 2 {
		if p.history[h-i].prevKey == p.key {
			count++
			if count >= n {
				return true
			}
		}
	}
	return count >= n
}

// Status classifies the position. Checkmate and stalemate take precedence over draws.
func (p *Position) Status() GameStatus {
	if !p.HasLegalMoves() {
		if p.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case p.IsDrawBy50():
		return DrawFiftyMove
	case p.IsInsufficientMaterial():
		return DrawInsufficientMaterial
	case p.IsRepetition(3):
		return DrawRepetition
	}
	return Ongoing
}
