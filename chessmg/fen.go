package chessmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var errFEN = errors.New("invalid FEN")

// ParseFEN parses a FEN string into a new Position. The halfmove and fullmove
// fields are optional and default to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields in %q", errFEN, fen)
	}

	p := &Position{enPassantSquare: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", errFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", errFEN, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", errFEN, rank+1)
			}
			p.addPiece(MakeSquare(file, rank), pc)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d does not have 8 files", errFEN, rank+1)
		}
	}
	for c := White; c <= Black; c++ {
		if n := p.Pieces(c, PieceTypeKing).Count(); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", errFEN, c, n)
		}
	}
	if (Rank1|Rank8)&p.byType[PieceTypePawn] != 0 {
		return nil, fmt.Errorf("%w: pawn on first or last rank", errFEN)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", errFEN)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= CastlingWhiteK
			case 'Q':
				p.castlingRights |= CastlingWhiteQ
			case 'k':
				p.castlingRights |= CastlingBlackK
			case 'q':
				p.castlingRights |= CastlingBlackQ
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", errFEN, ch)
			}
		}
	}
	// A right whose king or rook is off its home square can never be used.
	for _, cr := range castlingTable {
		if p.squares[cr.kingFrom] != cr.king || p.squares[cr.rookFrom] != cr.rook {
			p.castlingRights &^= cr.right
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errFEN, err)
		}
		if (p.sideToMove == White && sq.Rank() != 5) || (p.sideToMove == Black && sq.Rank() != 2) {
			return nil, fmt.Errorf("%w: en passant square %s on wrong rank", errFEN, sq)
		}
		// Same convention as MakeMove: keep the target only if a pawn can take on it.
		if pawnAttacks[p.sideToMove.Other()][sq]&p.Pieces(p.sideToMove, PieceTypePawn) != 0 {
			p.enPassantSquare = sq
		}
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q is not a number", errFEN, fields[4])
		}
		p.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q is not a number", errFEN, fields[5])
		}
		p.fullmoveNumber = n
	}

	p.key = p.ComputeZobrist()
	p.fromStart = strings.Join(fields[:4], " ") == "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	return p, nil
}

// ToFEN produces the FEN string of the current position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[MakeSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.castlingRights == CastlingNone {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if p.castlingRights&(1<<uint(i)) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// ParseMove resolves a UCI move string (e2e4, e7e8q) against the legal moves
// of the position.
func ParseMove(p *Position, s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}
	promo := PieceTypeNone
	if len(s) == 5 {
		promo = pieceFromChar(s[4]).Type()
		if promo < PieceTypeKnight || promo > PieceTypeQueen {
			return NullMove, fmt.Errorf("invalid promotion piece in %q", s)
		}
	}
	for _, m := range p.GenerateMovesFrom(from) {
		if m.To() == to && m.PromotionType() == promo {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("illegal move %q in %s", s, p.ToFEN())
}
