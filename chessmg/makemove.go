package chessmg

import "fmt"

type castleInfo struct {
	right    CastlingRights
	king     Piece
	rook     Piece
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	// Squares that must be empty, and squares the king crosses that must not be attacked.
	empty Bitboard
	safe  Bitboard
}

var castlingTable = [4]castleInfo{
	{CastlingWhiteK, WhiteKing, WhiteRook, E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), SquareBB(F1) | SquareBB(G1)},
	{CastlingWhiteQ, WhiteKing, WhiteRook, E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), SquareBB(C1) | SquareBB(D1)},
	{CastlingBlackK, BlackKing, BlackRook, E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), SquareBB(F8) | SquareBB(G8)},
	{CastlingBlackQ, BlackKing, BlackRook, E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), SquareBB(C8) | SquareBB(D8)},
}

// castleByKingTo maps a castling king destination to its table entry.
func castleByKingTo(to Square) *castleInfo {
	switch to {
	case G1:
		return &castlingTable[0]
	case C1:
		return &castlingTable[1]
	case G8:
		return &castlingTable[2]
	default:
		return &castlingTable[3]
	}
}

// castlingMask[sq] is ANDed into the rights whenever a move starts or ends on sq,
// which covers king moves, rook moves and rook captures on the corners.
var castlingMask [64]CastlingRights

func init() {
	for sq := range castlingMask {
		castlingMask[sq] = CastlingAll
	}
	castlingMask[E1] &^= CastlingWhiteK | CastlingWhiteQ
	castlingMask[H1] &^= CastlingWhiteK
	castlingMask[A1] &^= CastlingWhiteQ
	castlingMask[E8] &^= CastlingBlackK | CastlingBlackQ
	castlingMask[H8] &^= CastlingBlackK
	castlingMask[A8] &^= CastlingBlackQ
}

// MakeMove applies a move produced by the move generator for this position and
// pushes the information needed to undo it. It panics when the move is
// inconsistent with the position (empty origin, opponent piece, own-piece or king capture).
func (p *Position) MakeMove(m Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.sideToMove
	moved := p.squares[from]
	if moved == NoPiece || moved.Color() != us {
		panic(fmt.Sprintf("MakeMove %s: no %s piece on %s in %s", m, us, from, p.ToFEN()))
	}
	captured := p.squares[to]
	if captured != NoPiece && (captured.Color() == us || captured.Type() == PieceTypeKing) {
		panic(fmt.Sprintf("MakeMove %s: cannot capture %c in %s", m, captured.Char(), p.ToFEN()))
	}

	p.history = append(p.history, undoState{
		move:          m,
		captured:      captured,
		prevCastling:  p.castlingRights,
		prevEnPassant: p.enPassantSquare,
		prevHalfmove:  p.halfmoveClock,
		prevKey:       p.key,
	})
	u := &p.history[len(p.history)-1]

	if p.enPassantSquare != NoSquare {
		p.key ^= zobristEnPassant[p.enPassantSquare.File()]
		p.enPassantSquare = NoSquare
	}
	p.halfmoveClock++

	switch {
	case flag == FlagCastle:
		cr := castleByKingTo(to)
		p.movePiece(from, to)
		p.movePiece(cr.rookFrom, cr.rookTo)
	case flag == FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		u.captured = p.removePiece(capSq)
		p.movePiece(from, to)
		p.halfmoveClock = 0
	default:
		if captured != NoPiece {
			p.removePiece(to)
			p.halfmoveClock = 0
		}
		if pt := m.PromotionType(); pt != PieceTypeNone {
			p.removePiece(from)
			p.addPiece(to, MakePiece(us, pt))
		} else {
			p.movePiece(from, to)
		}
		if moved.Type() == PieceTypePawn {
			p.halfmoveClock = 0
			if to-from == 16 || from-to == 16 {
				ep := (from + to) / 2
				// Only record a target the opponent can actually capture on.
				if pawnAttacks[us][ep]&p.Pieces(us.Other(), PieceTypePawn) != 0 {
					p.enPassantSquare = ep
					p.key ^= zobristEnPassant[ep.File()]
				}
			}
		}
	}

	if rights := p.castlingRights & castlingMask[from] & castlingMask[to]; rights != p.castlingRights {
		p.key ^= zobristCastle[p.castlingRights] ^ zobristCastle[rights]
		p.castlingRights = rights
	}

	if us == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = us.Other()
	p.key ^= zobristSide
}

// UnmakeMove takes back m, which must be the most recent move made. Rights,
// en passant square, clock and key come from the undo stack.
func (p *Position) UnmakeMove(m Move) {
	n := len(p.history)
	if n == 0 || p.history[n-1].move != m {
		panic(fmt.Sprintf("UnmakeMove %s: not the last move made", m))
	}
	u := p.history[n-1]
	p.history = p.history[:n-1]

	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove
	if us == Black {
		p.fullmoveNumber--
	}
	from, to := m.From(), m.To()

	switch m.Flag() {
	case FlagCastle:
		cr := castleByKingTo(to)
		p.movePiece(cr.rookTo, cr.rookFrom)
		p.movePiece(to, from)
	case FlagEnPassant:
		p.movePiece(to, from)
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		p.addPiece(capSq, u.captured)
	default:
		if m.IsPromotion() {
			p.removePiece(to)
			p.addPiece(from, MakePiece(us, PieceTypePawn))
		} else {
			p.movePiece(to, from)
		}
		if u.captured != NoPiece {
			p.addPiece(to, u.captured)
		}
	}

	p.castlingRights = u.prevCastling
	p.enPassantSquare = u.prevEnPassant
	p.halfmoveClock = u.prevHalfmove
	p.key = u.prevKey
}

// MakeNullMove passes the turn without moving a piece. It is undone with UnmakeNullMove.
func (p *Position) MakeNullMove() {
	p.history = append(p.history, undoState{
		move:          NullMove,
		prevCastling:  p.castlingRights,
		prevEnPassant: p.enPassantSquare,
		prevHalfmove:  p.halfmoveClock,
		prevKey:       p.key,
	})
	if p.enPassantSquare != NoSquare {
		p.key ^= zobristEnPassant[p.enPassantSquare.File()]
		p.enPassantSquare = NoSquare
	}
	p.halfmoveClock++
	if p.sideToMove == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Other()
	p.key ^= zobristSide
}

func (p *Position) UnmakeNullMove() {
	n := len(p.history)
	if n == 0 || p.history[n-1].move != NullMove {
		panic("UnmakeNullMove: last move was not a null move")
	}
	u := p.history[n-1]
	p.history = p.history[:n-1]
	p.sideToMove = p.sideToMove.Other()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}
	p.enPassantSquare = u.prevEnPassant
	p.halfmoveClock = u.prevHalfmove
	p.key = u.prevKey
}
