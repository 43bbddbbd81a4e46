package chessmg

import "strings"

// Move is a packed 16-bit move: bits 0-5 origin, bits 6-11 destination, bits 12-15 flag.
// The zero value is NullMove.
type Move uint16

// Move flags
const (
	FlagNone uint8 = iota
	FlagQueenPromotion
	FlagRookPromotion
	FlagBishopPromotion
	FlagKnightPromotion
	FlagEnPassant
	FlagCastle
)

const (
	moveFromShift = 0
	moveToShift   = 6
	moveFlagShift = 12

	NullMove Move = 0
)

// NewMove packs a move.
func NewMove(from, to Square, flag uint8) Move {
	return Move(uint16(from)&0x3F | (uint16(to)&0x3F)<<moveToShift | uint16(flag&0xF)<<moveFlagShift)
}

// NewPromotion packs a promotion move to the given piece type.
func NewPromotion(from, to Square, pt PieceType) Move {
	return NewMove(from, to, promotionFlag(pt))
}

func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }
func (m Move) To() Square   { return Square((m >> moveToShift) & 0x3F) }
func (m Move) Flag() uint8  { return uint8(m >> moveFlagShift) }

func (m Move) IsNull() bool      { return m == NullMove }
func (m Move) IsCastle() bool    { return m.Flag() == FlagCastle }
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagQueenPromotion && f <= FlagKnightPromotion
}

// PromotionType returns the promoted-to piece type, or PieceTypeNone.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case FlagQueenPromotion:
		return PieceTypeQueen
	case FlagRookPromotion:
		return PieceTypeRook
	case FlagBishopPromotion:
		return PieceTypeBishop
	case FlagKnightPromotion:
		return PieceTypeKnight
	}
	return PieceTypeNone
}

func promotionFlag(pt PieceType) uint8 {
	switch pt {
	case PieceTypeQueen:
		return FlagQueenPromotion
	case PieceTypeRook:
		return FlagRookPromotion
	case PieceTypeBishop:
		return FlagBishopPromotion
	case PieceTypeKnight:
		return FlagKnightPromotion
	}
	return FlagNone
}

// String returns the UCI form of the move (e2e4, e7e8q, 0000 for the null move).
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if pt := m.PromotionType(); pt != PieceTypeNone {
		sb.WriteByte(MakePiece(Black, pt).Char())
	}
	return sb.String()
}
