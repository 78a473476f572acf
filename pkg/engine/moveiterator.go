package engine

import c "github.com/kagamivane/vairyfish/pkg/common"

const sortTableKeyImportant = 100000

// OrderedMove pairs a move with the sort key the iterators rank it by;
// moveList buffers in the search stack reuse the same backing array every
// node instead of allocating a fresh slice per call.
type OrderedMove struct {
	Move c.Move
	Key  int32
}

type moveIteratorQS struct {
	position *c.Position
	buffer   []OrderedMove
	count    int
	index    int
}

func (mi *moveIteratorQS) Init() {
	var ml []c.Move
	if mi.position.IsCheck() {
		ml = mi.position.LegalMoves(make([]c.Move, 0, c.MaxMoves))
	} else {
		ml = mi.position.LegalCaptures(make([]c.Move, 0, c.MaxMoves))
	}
	mi.count = len(ml)
	for i, m := range ml {
		var score int
		if isCaptureOrPromotion(m) {
			score = 29000 + mvvlva(m)
		}
		mi.buffer[i] = OrderedMove{Move: m, Key: int32(score)}
	}
	sortMoves(mi.buffer[:mi.count])
}

func (mi *moveIteratorQS) Reset() { mi.index = 0 }

func (mi *moveIteratorQS) Next() c.Move {
	if mi.index >= mi.count {
		return c.MoveNone
	}
	var m = mi.buffer[mi.index].Move
	mi.index++
	return m
}

type moveIterator struct {
	position  *c.Position
	buffer    []OrderedMove
	history   historyContext
	transMove c.Move
	killer1   c.Move
	killer2   c.Move
	count     int
	index     int
}

func (mi *moveIterator) Init() {
	var ml = mi.position.LegalMoves(make([]c.Move, 0, c.MaxMoves))
	mi.count = len(ml)

	for i, m := range ml {
		var score int
		switch {
		case m == mi.transMove:
			score = sortTableKeyImportant + 2000
		case isCaptureOrPromotion(m):
			if mi.position.SeeGE(m, 0) {
				score = sortTableKeyImportant + 1000 + mvvlva(m)
			} else {
				score = mvvlva(m)
			}
		case m == mi.killer1:
			score = sortTableKeyImportant + 1
		case m == mi.killer2:
			score = sortTableKeyImportant
		default:
			score = mi.history.ReadTotal(m)
		}
		mi.buffer[i] = OrderedMove{Move: m, Key: int32(score)}
	}
}

func (mi *moveIterator) Reset() { mi.index = 0 }

func (mi *moveIterator) Next() c.Move {
	if mi.index >= mi.count {
		return c.MoveNone
	}
	const sortMovesIndex = 1
	if mi.index <= sortMovesIndex {
		if mi.index == sortMovesIndex {
			sortMoves(mi.buffer[mi.index:mi.count])
		} else {
			moveToTop(mi.buffer[mi.index:mi.count])
		}
	}
	var m = mi.buffer[mi.index].Move
	mi.index++
	return m
}

var sortPieceValues = [c.PieceTypeNB]int{c.NoPieceType: 0, c.Pawn: 1, c.Knight: 2, c.Bishop: 3, c.Rook: 4, c.Queen: 5, c.King: 6}

func mvvlva(m c.Move) int {
	return 8*(sortPieceValues[m.CapturedPiece()]+sortPieceValues[m.Promotion()]) - sortPieceValues[m.MovingPiece()]
}

func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		var j, t = i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func moveToTop(ml []OrderedMove) {
	var bestIndex = 0
	for i := 1; i < len(ml); i++ {
		if ml[i].Key > ml[bestIndex].Key {
			bestIndex = i
		}
	}
	if bestIndex != 0 {
		ml[0], ml[bestIndex] = ml[bestIndex], ml[0]
	}
}
