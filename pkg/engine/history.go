package engine

import c "github.com/kagamivane/vairyfish/pkg/common"

const historyMax = 1 << 14

// historyContext binds one quiet-move ordering lookup/update to the side
// to move and the one or two continuation-history slots its immediate
// predecessor moves index into.
type historyContext struct {
	thread     *thread
	sideToMove c.Color
	cont1      int
	cont2      int
}

func (h *historyContext) ReadTotal(m c.Move) int {
	var score = int(h.thread.mainHistory[sideFromToIndex(h.sideToMove, m)])
	var pieceToIndex = pieceSquareIndex(h.sideToMove, m)
	if h.cont1 != -1 {
		score += int(h.thread.continuationHistory[h.cont1][pieceToIndex])
	}
	if h.cont2 != -1 {
		score += int(h.thread.continuationHistory[h.cont2][pieceToIndex])
	}
	return score
}

func (h *historyContext) Update(quietsSearched []c.Move, bestMove c.Move, depth int) {
	var bonus = c.Min(depth*depth, 400)
	var t = h.thread

	for _, m := range quietsSearched {
		var good = m == bestMove

		var fromToIndex = sideFromToIndex(h.sideToMove, m)
		updateHistory(&t.mainHistory[fromToIndex], bonus, good)
		var pieceToIndex = pieceSquareIndex(h.sideToMove, m)
		if h.cont1 != -1 {
			updateHistory(&t.continuationHistory[h.cont1][pieceToIndex], bonus, good)
		}
		if h.cont2 != -1 {
			updateHistory(&t.continuationHistory[h.cont2][pieceToIndex], bonus, good)
		}

		if good {
			break
		}
	}
}

func updateHistory(v *int16, bonus int, good bool) {
	var newVal = -historyMax
	if good {
		newVal = historyMax
	}
	*v += int16((newVal - int(*v)) * bonus / 512)
}

func (t *thread) clearHistory() {
	for i := range t.mainHistory {
		t.mainHistory[i] = 0
	}
	for i := range t.continuationHistory {
		for j := range t.continuationHistory[i] {
			t.continuationHistory[i][j] = 0
		}
	}
}

// getHistoryContext reads the move that led to the current node and the
// one before it straight off the StateInfo chain, rather than a parallel
// LastMove field on a copied Position.
func (t *thread) getHistoryContext(height int) historyContext {
	var p = t.position
	var sideToMove = p.SideToMove()
	var cont1 = -1
	if prev1 := p.State().Move; prev1 != c.MoveNone && !prev1.IsNull() {
		cont1 = pieceSquareIndex(sideToMove.Opposite(), prev1)
	}
	var cont2 = -1
	if prev1 := p.State().Previous; height > 0 && prev1 != nil {
		if prev2 := prev1.Move; prev2 != c.MoveNone && !prev2.IsNull() {
			cont2 = pieceSquareIndex(sideToMove, prev2)
		}
	}
	return historyContext{thread: t, sideToMove: sideToMove, cont1: cont1, cont2: cont2}
}

func pieceSquareIndex(side c.Color, m c.Move) int {
	var result = (int(m.MovingPiece()) << 6) | int(m.To())
	if side == c.Black {
		result |= 1 << 9
	}
	return result
}

func sideFromToIndex(side c.Color, m c.Move) int {
	var result = (int(m.From()) << 6) | int(m.To())
	if side == c.Black {
		result |= 1 << 12
	}
	return result
}
