package engine

import c "github.com/kagamivane/vairyfish/pkg/common"

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int  { return valueMate - height }
func lossIn(height int) int { return -valueMate + height }

// valueToTT/valueFromTT shift a mate score between "plies from the search
// root" (what alphaBeta returns) and "plies from this node" (what's worth
// storing, since a TT entry gets probed from many different heights).
func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}
	if v <= valueLoss {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}
	if v <= valueLoss {
		return v + height
	}
	return v
}

func newUciScore(v int) UciScore {
	switch {
	case v >= valueWin:
		return UciScore{Mate: (valueMate - v + 1) / 2}
	case v <= valueLoss:
		return UciScore{Mate: (-valueMate - v) / 2}
	default:
		return UciScore{Centipawns: v}
	}
}

// isLateEndgame reports whether side has no rook/queen and at most one
// minor piece left — used to skip null-move pruning, since simplified
// endgames need the search to look further rather than trust the static
// evaluator.
func isLateEndgame(p *c.Position, side c.Color) bool {
	var own = p.PiecesByColor(side)
	var majors = (p.Pieces(c.Rook) | p.Pieces(c.Queen)) & own
	var minors = (p.Pieces(c.Knight) | p.Pieces(c.Bishop)) & own
	return majors == 0 && !c.MoreThanOne(minors)
}

func isCaptureOrPromotion(m c.Move) bool { return m.IsCaptureOrPromotion() }

func isPawnPush7th(m c.Move, side c.Color) bool {
	return m.MovingPiece() == c.Pawn && c.RelativeRank(side, c.RankOf(m.To())) == c.Rank7
}

func isPawnAdvance(m c.Move, side c.Color) bool {
	return m.MovingPiece() == c.Pawn && c.RelativeRank(side, c.RankOf(m.To())) >= c.Rank6
}

func isRecapture(prev, m c.Move) bool {
	return prev != c.MoveNone && isCaptureOrPromotion(prev) && m.To() == prev.To()
}

// drawValue applies Contempt as a penalty on draw scores from the
// perspective of the side to move at the drawn node, so a contemptuous
// engine treats draws as worse than valueDraw rather than as neutral.
func (t *thread) drawValue() int {
	return valueDraw - t.engine.Contempt
}
