package chessmg

// filter modes for selective generation
const (
	genAll = iota
	genCaptures
)

// GenerateMoves returns all legal moves for the side to move.
func (p *Position) GenerateMoves() []Move { return p.GenerateMovesInto(make([]Move, 0, 128)) }

// GenerateMovesInto appends all legal moves to dst[:0] and returns the result,
// reusing dst's storage when it is large enough.
func (p *Position) GenerateMovesInto(dst []Move) []Move { return p.generate(dst[:0], genAll) }

// GenerateCapturesInto appends the legal captures (en passant and capturing
// promotions included) to dst[:0].
func (p *Position) GenerateCapturesInto(dst []Move) []Move { return p.generate(dst[:0], genCaptures) }

// GenerateCaptures returns the legal captures for the side to move.
func (p *Position) GenerateCaptures() []Move { return p.GenerateCapturesInto(make([]Move, 0, 32)) }

// GenerateMovesFrom returns the legal moves of the piece on sq. It is empty when
// the square is empty, off the board, or holds a piece of the side not to move.
func (p *Position) GenerateMovesFrom(sq Square) []Move {
	if sq < 0 || sq > 63 {
		return nil
	}
	if pc := p.squares[sq]; pc == NoPiece || pc.Color() != p.sideToMove {
		return nil
	}
	all := p.GenerateMoves()
	moves := all[:0]
	for _, m := range all {
		if m.From() == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	var buf [128]Move
	return len(p.GenerateMovesInto(buf[:0])) > 0
}

// generate is the core legal generator. Non-king moves are restricted to the
// check mask (block or capture the single checker) and, for pinned pieces, to
// the line through the king. King moves are checked against enemy attacks
// computed with our king lifted off the board, so sliders see through it.
func (p *Position) generate(moves []Move, filter int) []Move {
	us := p.sideToMove
	them := us.Other()
	own := p.byColor[us]
	enemy := p.byColor[them]
	occ := own | enemy
	ksq := p.KingSquare(us)

	target := ^own
	if filter == genCaptures {
		target = enemy
	}

	checkers := p.attackersTo(ksq, occ) & enemy
	dangerous := p.attacksBy(them, occ&^SquareBB(ksq))

	// King
	for to := kingAttacks[ksq] & target &^ dangerous; to != 0; {
		moves = append(moves, NewMove(ksq, to.PopLSB(), FlagNone))
	}
	if checkers.More() {
		return moves
	}

	checkMask := FullBB
	if checkers != 0 {
		checkMask = betweenBB[ksq][checkers.LSB()] | checkers
	}
	target &= checkMask
	pinned := p.pinnedPieces(us, ksq, occ)

	// Knights. A pinned knight can never move.
	for from := p.Pieces(us, PieceTypeKnight) &^ pinned; from != 0; {
		sq := from.PopLSB()
		moves = appendTargets(moves, sq, knightAttacks[sq]&target)
	}

	// Sliders
	diag := p.Pieces(us, PieceTypeBishop) | p.Pieces(us, PieceTypeQueen)
	for diag != 0 {
		sq := diag.PopLSB()
		att := BishopAttacks(sq, occ) & target
		if pinned.Has(sq) {
			att &= lineBB[ksq][sq]
		}
		moves = appendTargets(moves, sq, att)
	}
	orth := p.Pieces(us, PieceTypeRook) | p.Pieces(us, PieceTypeQueen)
	for orth != 0 {
		sq := orth.PopLSB()
		att := RookAttacks(sq, occ) & target
		if pinned.Has(sq) {
			att &= lineBB[ksq][sq]
		}
		moves = appendTargets(moves, sq, att)
	}

	moves = p.generatePawnMoves(moves, filter, occ, enemy&checkMask, checkMask, pinned, ksq)

	if checkers == 0 && filter == genAll {
		moves = p.generateCastles(moves, occ, dangerous)
	}
	return moves
}

func appendTargets(moves []Move, from Square, targets Bitboard) []Move {
	for targets != 0 {
		moves = append(moves, NewMove(from, targets.PopLSB(), FlagNone))
	}
	return moves
}

func (p *Position) generatePawnMoves(moves []Move, filter int, occ, captureTargets, checkMask, pinned Bitboard, ksq Square) []Move {
	us := p.sideToMove
	pawns := p.Pieces(us, PieceTypePawn)

	var push1, push2, capWest, capEast Bitboard
	var up, west, east Square
	var lastRank, doubleRank Bitboard
	if us == White {
		up, west, east = 8, 7, 9
		lastRank, doubleRank = Rank8, Rank3
		push1 = north(pawns) &^ occ
		push2 = north(push1&doubleRank) &^ occ
		capWest = (pawns & notFileA) << 7
		capEast = (pawns & notFileH) << 9
	} else {
		up, west, east = -8, -9, -7
		lastRank, doubleRank = Rank1, Rank6
		push1 = south(pawns) &^ occ
		push2 = south(push1&doubleRank) &^ occ
		capWest = (pawns & notFileA) >> 9
		capEast = (pawns & notFileH) >> 7
	}

	add := func(from, to Square) {
		if pinned.Has(from) && !lineBB[ksq][from].Has(to) {
			return
		}
		if lastRank.Has(to) {
			moves = append(moves,
				NewPromotion(from, to, PieceTypeQueen),
				NewPromotion(from, to, PieceTypeRook),
				NewPromotion(from, to, PieceTypeBishop),
				NewPromotion(from, to, PieceTypeKnight),
			)
			return
		}
		moves = append(moves, NewMove(from, to, FlagNone))
	}

	for b := capWest & captureTargets; b != 0; {
		to := b.PopLSB()
		add(to-west, to)
	}
	for b := capEast & captureTargets; b != 0; {
		to := b.PopLSB()
		add(to-east, to)
	}
	if filter == genAll {
		for b := push1 & checkMask; b != 0; {
			to := b.PopLSB()
			add(to-up, to)
		}
		for b := push2 & checkMask; b != 0; {
			to := b.PopLSB()
			add(to-2*up, to)
		}
	}

	// En passant can expose the king along the rank the two pawns leave, which
	// the pin mask misses, so every candidate is tried on the board.
	if ep := p.enPassantSquare; ep != NoSquare {
		them := us.Other()
		for from := pawnAttacks[them][ep] & pawns; from != 0; {
			m := NewMove(from.PopLSB(), ep, FlagEnPassant)
			p.MakeMove(m)
			legal := !p.IsSquareAttacked(ksq, them)
			p.UnmakeMove(m)
			if legal {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func (p *Position) generateCastles(moves []Move, occ, dangerous Bitboard) []Move {
	base := 0
	if p.sideToMove == Black {
		base = 2
	}
	for i := base; i < base+2; i++ {
		cr := &castlingTable[i]
		if p.castlingRights&cr.right == 0 || occ&cr.empty != 0 || dangerous&cr.safe != 0 {
			continue
		}
		moves = append(moves, NewMove(cr.kingFrom, cr.kingTo, FlagCastle))
	}
	return moves
}

// pinnedPieces returns our pieces that are the only blocker between our king and an enemy slider.
func (p *Position) pinnedPieces(us Color, ksq Square, occ Bitboard) Bitboard {
	them := us.Other()
	queens := p.Pieces(them, PieceTypeQueen)
	snipers := RookAttacks(ksq, 0)&(p.Pieces(them, PieceTypeRook)|queens) |
		BishopAttacks(ksq, 0)&(p.Pieces(them, PieceTypeBishop)|queens)

	var pinned Bitboard
	for snipers != 0 {
		s := snipers.PopLSB()
		blockers := betweenBB[ksq][s] & occ
		if blockers != 0 && !blockers.More() && blockers&p.byColor[us] != 0 {
			pinned |= blockers
		}
	}
	return pinned
}

// attackersTo returns the pieces of both sides attacking sq given occupancy occ.
func (p *Position) attackersTo(sq Square, occ Bitboard) Bitboard {
	rq := p.byType[PieceTypeRook] | p.byType[PieceTypeQueen]
	bq := p.byType[PieceTypeBishop] | p.byType[PieceTypeQueen]
	return pawnAttacks[White][sq]&p.Pieces(Black, PieceTypePawn) |
		pawnAttacks[Black][sq]&p.Pieces(White, PieceTypePawn) |
		knightAttacks[sq]&p.byType[PieceTypeKnight] |
		kingAttacks[sq]&p.byType[PieceTypeKing] |
		RookAttacks(sq, occ)&rq |
		BishopAttacks(sq, occ)&bq
}

// attacksBy returns every square attacked by side c given occupancy occ.
func (p *Position) attacksBy(c Color, occ Bitboard) Bitboard {
	pawns := p.Pieces(c, PieceTypePawn)
	var att Bitboard
	if c == White {
		att = (pawns&notFileA)<<7 | (pawns&notFileH)<<9
	} else {
		att = (pawns&notFileA)>>9 | (pawns&notFileH)>>7
	}
	for b := p.Pieces(c, PieceTypeKnight); b != 0; {
		att |= knightAttacks[b.PopLSB()]
	}
	for b := p.Pieces(c, PieceTypeBishop) | p.Pieces(c, PieceTypeQueen); b != 0; {
		att |= BishopAttacks(b.PopLSB(), occ)
	}
	for b := p.Pieces(c, PieceTypeRook) | p.Pieces(c, PieceTypeQueen); b != 0; {
		att |= RookAttacks(b.PopLSB(), occ)
	}
	if k := p.KingSquare(c); k != NoSquare {
		att |= kingAttacks[k]
	}
	return att
}

// AttackedBy returns every square attacked by side c in the current position.
func (p *Position) AttackedBy(c Color) Bitboard { return p.attacksBy(c, p.Occupied()) }

// IsSquareAttacked reports whether sq is attacked by side by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.attackersTo(sq, p.Occupied())&p.byColor[by] != 0
}

// Checkers returns the enemy pieces giving check to the side to move.
func (p *Position) Checkers() Bitboard {
	return p.attackersTo(p.KingSquare(p.sideToMove), p.Occupied()) & p.byColor[p.sideToMove.Other()]
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.Checkers() != 0 }
