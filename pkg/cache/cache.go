// Package cache holds the per-thread pawn and material hash tables the
// evaluator consults so it doesn't re-derive pawn structure or endgame
// classification on every call to Evaluate.
package cache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

// PawnEntry caches the pawn-structure part of the score plus the passed-pawn
// bitboard, keyed by the pawn and king bitboards (anything that moves a
// piece other than a pawn or king leaves this entry valid).
type PawnEntry struct {
	WhitePawns, BlackPawns c.Bitboard
	WhiteKing, BlackKing   c.Square
	Score                  c.Score
	Passed                 c.Bitboard
	valid                  bool
}

type PawnTable struct {
	entries []PawnEntry
	mask    uint64
}

func NewPawnTable(sizeLog2 int) *PawnTable {
	var size = uint64(1) << uint(sizeLog2)
	return &PawnTable{entries: make([]PawnEntry, size), mask: size - 1}
}

func mixKey(parts ...uint64) uint64 {
	var buf [8]byte
	var h = xxhash.New()
	for _, v := range parts {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (t *PawnTable) Probe(p *c.Position) (*PawnEntry, bool) {
	var wp = p.PiecesCP(c.White, c.Pawn)
	var bp = p.PiecesCP(c.Black, c.Pawn)
	var wk = p.KingSquare(c.White)
	var bk = p.KingSquare(c.Black)
	var key = mixKey(uint64(wp), uint64(bp), uint64(wk), uint64(bk))
	var e = &t.entries[key&t.mask]
	if e.valid && e.WhitePawns == wp && e.BlackPawns == bp && e.WhiteKing == wk && e.BlackKing == bk {
		return e, true
	}
	e.WhitePawns, e.BlackPawns, e.WhiteKing, e.BlackKing = wp, bp, wk, bk
	e.valid = true
	return e, false
}

// MaterialEntry caches which endgame recognizer (if any) applies and the
// scale factor it assigns, keyed by Position.MaterialKey.
type MaterialEntry struct {
	Key          uint64
	ScaleFactor  int
	EvaluatorTag int
	valid        bool
}

type MaterialTable struct {
	entries []MaterialEntry
	mask    uint64
}

func NewMaterialTable(sizeLog2 int) *MaterialTable {
	var size = uint64(1) << uint(sizeLog2)
	return &MaterialTable{entries: make([]MaterialEntry, size), mask: size - 1}
}

func (t *MaterialTable) Probe(key uint64) (*MaterialEntry, bool) {
	var e = &t.entries[xxhash.Sum64(keyBytes(key))&t.mask]
	if e.valid && e.Key == key {
		return e, true
	}
	e.Key = key
	e.valid = true
	return e, false
}

func keyBytes(key uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return buf[:]
}
