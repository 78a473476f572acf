package common

import "strings"

// Move is a packed int32 using bits 0-24: from (6 bits), to (6 bits),
// moving piece (3), captured piece (3), promotion piece (3), flag (2),
// then a drop bit and a null-move bit.
// Two overloaded encodings reuse otherwise-unused bit combinations: a drop
// (Crazyhouse-family) carries the dropped piece type in the "from" field
// with the Drop flag bit set; a king-promotion (Antichess/Extinction) is a
// Promotion-flag move whose promotion field is King.
type Move int32

const (
	moveFlagNormal    = 0
	moveFlagPromotion = 1
	moveFlagEnPassant = 2
	moveFlagCastling  = 3
)

const (
	fromShift      = 0
	toShift        = 6
	movingShift    = 12
	capturedShift  = 15
	promotionShift = 18
	flagShift      = 21
	dropBit        = 1 << 23
	nullBit        = 1 << 24
)

const MoveNone Move = 0
const MoveNull Move = Move(nullBit)

func MakeMove(from, to Square, movingPiece, capturedPiece PieceType) Move {
	return Move(int(from)<<fromShift | int(to)<<toShift |
		int(movingPiece)<<movingShift | int(capturedPiece)<<capturedShift)
}

func MakePawnMove(from, to Square, capturedPiece, promotion PieceType) Move {
	var m = Move(int(from)<<fromShift | int(to)<<toShift |
		int(Pawn)<<movingShift | int(capturedPiece)<<capturedShift |
		int(promotion)<<promotionShift)
	if promotion != NoPieceType {
		m |= moveFlagPromotion << flagShift
	}
	return m
}

func MakeEnPassant(from, to Square) Move {
	return MakeMove(from, to, Pawn, Pawn) | (moveFlagEnPassant << flagShift)
}

func MakeCastling(from, to Square) Move {
	return MakeMove(from, to, King, NoPieceType) | (moveFlagCastling << flagShift)
}

// MakeDrop encodes a Crazyhouse-family piece drop: no origin square, just
// the dropped piece type and the destination.
func MakeDrop(piece PieceType, to Square) Move {
	return Move(int(piece)<<fromShift|int(to)<<toShift|int(piece)<<movingShift) | dropBit
}

func (m Move) From() Square            { return Square((m >> fromShift) & 63) }
func (m Move) To() Square              { return Square((m >> toShift) & 63) }
func (m Move) MovingPiece() PieceType  { return PieceType((m >> movingShift) & 7) }
func (m Move) CapturedPiece() PieceType{ return PieceType((m >> capturedShift) & 7) }
func (m Move) Promotion() PieceType    { return PieceType((m >> promotionShift) & 7) }
func (m Move) flag() int               { return int((m >> flagShift) & 3) }

func (m Move) IsDrop() bool        { return m&dropBit != 0 }
func (m Move) DropPiece() PieceType { return PieceType((m >> fromShift) & 7) }
func (m Move) IsNull() bool        { return m&nullBit != 0 }
func (m Move) IsPromotion() bool   { return m.flag() == moveFlagPromotion && !m.IsDrop() }
func (m Move) IsEnPassant() bool   { return m.flag() == moveFlagEnPassant }
func (m Move) IsCastling() bool    { return m.flag() == moveFlagCastling }
func (m Move) IsCapture() bool     { return m.CapturedPiece() != NoPieceType && !m.IsDrop() }
func (m Move) IsCaptureOrPromotion() bool {
	return m.IsCapture() || m.IsPromotion()
}

// ParseMoveLAN resolves a UCI long-algebraic move string ("e2e4", "e7e8q",
// "P@e4") against the position's own legal move list, rather than
// reconstructing a Move from the string directly — castling, en passant
// and drop flags are only set correctly on a move this position's
// generator actually produced.
func ParseMoveLAN(p *Position, s string) (Move, bool) {
	var buf [MaxMoves]Move
	for _, m := range p.LegalMoves(buf[:0]) {
		if strings.EqualFold(m.String(), s) {
			return m, true
		}
	}
	return MoveNone, false
}

func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	if m.IsNull() {
		return "0000"
	}
	if m.IsDrop() {
		return string(m.DropPiece().Letter()^0x20) + "@" + m.To().String()
	}
	var s = m.From().String() + m.To().String()
	if m.IsPromotion() && m.Promotion() != King {
		s += string(m.Promotion().Letter())
	}
	return s
}
