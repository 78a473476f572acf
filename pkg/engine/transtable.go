package engine

import (
	"sync/atomic"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// packMove squeezes a Move down to the 16 bits worth storing in a TT
// entry: origin, destination, promotion piece, and the drop flag. Capture
// information is dropped — Position.PseudoLegal/board state reconstructs
// it on probe, the same trick Stockfish's TTEntry::move16 uses.
func packMove(m c.Move) uint16 {
	if m == c.MoveNone {
		return 0
	}
	var drop uint16
	if m.IsDrop() {
		drop = 1
	}
	return uint16(m.From()&63) | uint16(m.To()&63)<<6 | uint16(m.Promotion()&7)<<12 | drop<<15
}

// unpackMove reconstructs a full Move from its packed 16-bit form against
// the current position, or returns MoveNone if the packed value no longer
// corresponds to anything legal-looking (a torn TT read, or a move from a
// different position that happens to hash to the same slot).
func unpackMove(packed uint16, p *c.Position) c.Move {
	if packed == 0 {
		return c.MoveNone
	}
	var from = c.Square(packed & 63)
	var to = c.Square((packed >> 6) & 63)
	var promo = c.PieceType((packed >> 12) & 7)
	var isDrop = (packed>>15)&1 != 0

	var m c.Move
	if isDrop {
		m = c.MakeDrop(c.PieceType(from&7), to)
	} else {
		var moving = p.PieceOn(from)
		if moving == c.NoPiece {
			return c.MoveNone
		}
		var captured = p.PieceOn(to).Type()
		if promo != c.NoPieceType {
			m = c.MakePawnMove(from, to, captured, promo)
		} else if moving.Type() == c.King && c.FileDistance(from, to) > 1 {
			m = c.MakeCastling(from, to)
		} else if moving.Type() == c.Pawn && to == p.EpSquare() {
			m = c.MakeEnPassant(from, to)
		} else {
			m = c.MakeMove(from, to, moving.Type(), captured)
		}
	}
	if !p.PseudoLegal(m) {
		return c.MoveNone
	}
	return m
}

// ttEntry is one 10-byte slot: 16-bit key hash, packed generation+bound,
// 8-bit depth, 16-bit move, 16-bit value, 16-bit static eval. Three of
// these make up a cluster; Go doesn't let us pad a struct to a cache line
// the way Stockfish's placement-new does, so clusters here are
// just a fixed-size array field rather than a raw byte buffer.
type ttEntry struct {
	key16       uint16
	genBound8   uint8
	depth8      int8
	move16      uint16
	value16     int16
	evalValue16 int16
}

func (e *ttEntry) bound() int { return int(e.genBound8 & 3) }
func (e *ttEntry) gen() uint8 { return e.genBound8 &^ 3 }

const clusterSize = 3

type ttCluster struct {
	entries [clusterSize]ttEntry
	gate    int32
}

type TransTable struct {
	clusters   []ttCluster
	mask       uint64
	generation uint8
	megabytes  int
}

func roundPowerOfTwo(n uint64) uint64 {
	var x = uint64(1)
	for x<<1 <= n {
		x <<= 1
	}
	return x
}

func NewTransTable(megabytes int) *TransTable {
	var bytes = uint64(megabytes) * 1024 * 1024
	var clusterBytes = uint64(clusterSize) * 16 // entries rounded to 16 bytes each for alignment headroom
	var count = roundPowerOfTwo(bytes / clusterBytes)
	if count == 0 {
		count = 1
	}
	return &TransTable{
		clusters:  make([]ttCluster, count),
		mask:      count - 1,
		megabytes: megabytes,
	}
}

func (tt *TransTable) Size() int { return tt.megabytes }

func (tt *TransTable) NewSearch() { tt.generation += 4 }

func (tt *TransTable) Clear() {
	tt.generation = 0
	for i := range tt.clusters {
		tt.clusters[i] = ttCluster{}
	}
}

type ProbeResult struct {
	Depth, Value, EvalValue, Bound int
	Move                           c.Move
	Hit                            bool
}

// Probe takes the cluster's CAS gate for the whole lookup and reports a
// miss when another thread holds it. The stored move is still checked
// against the live position via PseudoLegal before it is returned, since
// the 16-bit key check alone can match an entry from another position.
func (tt *TransTable) Probe(key uint64, p *c.Position, height int) ProbeResult {
	var cluster = &tt.clusters[key&tt.mask]
	if !atomic.CompareAndSwapInt32(&cluster.gate, 0, 1) {
		return ProbeResult{}
	}
	defer atomic.StoreInt32(&cluster.gate, 0)

	var key16 = uint16(key >> 48)
	for i := range cluster.entries {
		var e = &cluster.entries[i]
		if e.key16 == key16 && e.depth8 != 0 {
			e.genBound8 = tt.generation | uint8(e.bound())
			var m = unpackMove(e.move16, p)
			return ProbeResult{
				Depth:     int(e.depth8),
				Value:     valueFromTT(int(e.value16), height),
				EvalValue: int(e.evalValue16),
				Bound:     e.bound(),
				Move:      m,
				Hit:       true,
			}
		}
	}
	return ProbeResult{}
}

func (tt *TransTable) Store(key uint64, depth, value, evalValue, bound int, m c.Move, height int) {
	var cluster = &tt.clusters[key&tt.mask]
	if !atomic.CompareAndSwapInt32(&cluster.gate, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&cluster.gate, 0)

	var key16 = uint16(key >> 48)
	var replace = &cluster.entries[0]
	for i := range cluster.entries {
		var e = &cluster.entries[i]
		if e.depth8 == 0 || e.key16 == key16 {
			replace = e
			break
		}
		// prefer replacing the entry from the oldest generation with the
		// shallowest remaining search depth
		if e.gen() != tt.generation && int(e.depth8)-2*int(tt.generation-e.gen())/4 <
			int(replace.depth8)-2*int(tt.generation-replace.gen())/4 {
			replace = e
		}
	}

	var move16 = packMoveRaw(m)
	if m == c.MoveNone && replace.key16 == key16 {
		move16 = replace.move16 // keep the stored move when the caller has none
	}

	*replace = ttEntry{
		key16:       key16,
		genBound8:   tt.generation | uint8(bound),
		depth8:      int8(depth),
		move16:      move16,
		value16:     int16(valueToTT(value, height)),
		evalValue16: int16(evalValue),
	}
}

func packMoveRaw(m c.Move) uint16 {
	if m == c.MoveNone {
		return 0
	}
	return packMove(m)
}
