package chessmg

import (
	"fmt"
	"strings"
)

// undoState holds the minimal state needed to take a move back. Everything else
// is recovered from the move itself.
type undoState struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevKey       uint64
}

// Position is a chess position: piece placement, side to move, castling rights,
// en passant target, clocks and Zobrist key, plus the stack of moves played on it.
//
// A Position is mutated in place by MakeMove/UnmakeMove and must not be shared
// between goroutines; use Clone for an independent copy.
type Position struct {
	// Bitboards per piece type (index 0 unused) and per color.
	byType  [PieceTypeKing + 1]Bitboard
	byColor [2]Bitboard

	// Mirror of the bitboards, one entry per square.
	squares [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square

	// Half-moves since the last capture or pawn move, for the 50-move rule.
	halfmoveClock int
	// Starts at 1, incremented after Black's move.
	fullmoveNumber int

	key uint64

	history []undoState

	// Set when the position was built from the standard initial setup.
	fromStart bool
}

// NewPosition builds a position from FEN. An empty string means the standard
// start position. It panics on malformed FEN; use ParseFEN to get an error instead.
func NewPosition(fen string) *Position {
	if fen == "" {
		fen = FENStartPos
	}
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns an independent deep copy, including the move history.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]undoState(nil), p.history...)
	return &c
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en passant target square or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Hash returns the current Zobrist key.
func (p *Position) Hash() uint64 { return p.key }

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

func (p *Position) Occupied() Bitboard           { return p.byColor[White] | p.byColor[Black] }
func (p *Position) ByColor(c Color) Bitboard     { return p.byColor[c] }
func (p *Position) ByType(pt PieceType) Bitboard { return p.byType[pt] }

// Pieces returns the bitboard of pieces of the given side and type.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.byType[pt] & p.byColor[c] }

// KingSquare returns the square of the side's king, or NoSquare if it has none.
func (p *Position) KingSquare(c Color) Square { return p.Pieces(c, PieceTypeKing).LSB() }

// FromStartpos reports whether the position descends from the standard start
// position through the moves returned by Moves.
func (p *Position) FromStartpos() bool { return p.fromStart }

// Moves returns the moves made on this position since it was constructed, oldest first.
func (p *Position) Moves() []Move {
	moves := make([]Move, len(p.history))
	for i, u := range p.history {
		moves[i] = u.move
	}
	return moves
}

// Ply returns the number of moves made since construction.
func (p *Position) Ply() int { return len(p.history) }

// LastMove returns the most recently made move, or NullMove.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return NullMove
	}
	return p.history[len(p.history)-1].move
}

// addPiece places a piece on an empty square, keeping bitboards, mirror and key in sync.
func (p *Position) addPiece(sq Square, pc Piece) {
	b := SquareBB(sq)
	p.squares[sq] = pc
	p.byType[pc.Type()] |= b
	p.byColor[pc.Color()] |= b
	p.key ^= zobristPiece[pc][sq]
}

// removePiece clears a square and returns what was on it.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.squares[sq]
	if pc == NoPiece {
		return NoPiece
	}
	b := SquareBB(sq)
	p.squares[sq] = NoPiece
	p.byType[pc.Type()] &^= b
	p.byColor[pc.Color()] &^= b
	p.key ^= zobristPiece[pc][sq]
	return pc
}

// movePiece relocates a piece to an empty square.
func (p *Position) movePiece(from, to Square) {
	pc := p.squares[from]
	fromTo := SquareBB(from) | SquareBB(to)
	p.squares[from] = NoPiece
	p.squares[to] = pc
	p.byType[pc.Type()] ^= fromTo
	p.byColor[pc.Color()] ^= fromTo
	p.key ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
}

// Validate cross-checks the mirror array against the bitboards and the incremental
// key against a full recomputation.
func (p *Position) Validate() error {
	var byType [PieceTypeKing + 1]Bitboard
	var byColor [2]Bitboard
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece {
			continue
		}
		byType[pc.Type()].Set(sq)
		byColor[pc.Color()].Set(sq)
	}
	if byType != p.byType {
		return fmt.Errorf("piece bitboards disagree with square array")
	}
	if byColor != p.byColor {
		return fmt.Errorf("color bitboards disagree with square array")
	}
	if p.byColor[White]&p.byColor[Black] != 0 {
		return fmt.Errorf("color bitboards overlap")
	}
	var all Bitboard
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if all&p.byType[pt] != 0 {
			return fmt.Errorf("piece bitboards overlap")
		}
		all |= p.byType[pt]
	}
	if all != p.Occupied() {
		return fmt.Errorf("type union %x differs from color union %x", uint64(all), uint64(p.Occupied()))
	}
	if k := p.ComputeZobrist(); k != p.key {
		return fmt.Errorf("zobrist key %x, recomputed %x", p.key, k)
	}
	return nil
}

// String renders the board as text, rank 8 first, followed by the FEN.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(p.squares[MakeSquare(file, rank)].Char())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	sb.WriteString(p.ToFEN())
	return sb.String()
}
