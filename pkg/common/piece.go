package common

import (
	"strings"
	"unicode"
)

const pieceLetters = "pnbrqk"

func (pt PieceType) Letter() byte {
	if pt < Pawn || pt > King {
		return '?'
	}
	return pieceLetters[pt-Pawn]
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	var s = string(p.Type().Letter())
	if p.Color() == White {
		s = strings.ToUpper(s)
	}
	return s
}

// ParsePieceChar decodes a FEN piece letter, reporting ok=false for anything
// that isn't one of PNBRQKpnbrqk.
func ParsePieceChar(ch rune) (p Piece, ok bool) {
	var side = White
	if unicode.IsLower(ch) {
		side = Black
	}
	var i = strings.IndexRune(pieceLetters, unicode.ToLower(ch))
	if i < 0 {
		return NoPiece, false
	}
	return MakePiece(side, PieceType(i+1)), true
}
