package common

// GameResult enumerates how a game ends for the side to move.
type GameResult int

const (
	ResultNone GameResult = iota
	ResultWin
	ResultLoss
	ResultDraw
)

// IsRepetition walks the StateInfo chain looking for an earlier position
// with the same key, reversible since the last pawn move/capture/drop.
// This is a linear backward scan rather than an O(1) cuckoo-hash lookup;
// at the rule50-bounded depths a search actually walks, the scan costs
// nothing that shows up in a profile.
//
// A repeat found strictly inside the current search tree (between st and
// p.root) is treated as a draw on its first occurrence: once the search
// has proven a position recurs, continuing past it can't change the
// outcome, so there's no need to wait for the rule's literal third
// occurrence. A repeat found at or before p.root is real game history and
// only draws on its second occurrence (three total with the current
// position), matching the actual threefold-repetition rule.
func (p *Position) IsRepetition() bool {
	var st = p.st
	var walked = st.Previous
	var pastRoot = false
	var priorMatches = 0
	for i := 1; i <= st.Rule50 && walked != nil; i++ {
		if walked == p.root {
			pastRoot = true
		}
		if i >= 2 && walked.Key == st.Key {
			if !pastRoot {
				return true
			}
			priorMatches++
			if priorMatches >= 2 {
				return true
			}
		}
		walked = walked.Previous
	}
	return false
}

// IsDraw reports a rule50 draw or repetition, not counting variant win/loss
// conditions, which VariantResult covers separately.
func (p *Position) IsDraw() bool {
	if p.st.Rule50 >= 100 {
		return true
	}
	return p.IsRepetition()
}

// HasInsufficientMaterial reports the orthodox-chess dead position rule:
// neither side has enough material to ever force checkmate.
func (p *Position) HasInsufficientMaterial() bool {
	if p.byType[Pawn] != 0 || p.byType[Rook] != 0 || p.byType[Queen] != 0 {
		return false
	}
	var minors = p.byType[Knight] | p.byType[Bishop]
	if PopCount(minors) <= 1 {
		return true
	}
	if PopCount(minors) == 2 && p.byType[Knight] == 0 && MoreThanOne(p.byType[Bishop]) {
		// same-color bishops only
		var bishops = p.byType[Bishop]
		var first = FirstOne(bishops)
		bishops &= bishops - 1
		if bishops != 0 {
			var second = FirstOne(bishops)
			return IsDarkSquare(first) == IsDarkSquare(second)
		}
	}
	return false
}

// hasFlagReply reports whether us has a legal move that lands the flag
// piece type on the flag squares this turn, the one reply Racing Kings
// grants before confirming the opponent's race win.
func (p *Position) hasFlagReply(us Color) bool {
	var v = p.Variant
	for _, m := range p.LegalMoves(make([]Move, 0, 16)) {
		if m.MovingPiece() == v.FlagPieceType && SquareBB[m.To()]&v.FlagSquares != 0 {
			return true
		}
	}
	return false
}

// VariantResult checks the side-to-move's position against every active
// variant win/loss condition (extinction, king capture, flag race, no legal
// moves under the variant's stalemate rule) and reports who it favors, if
// anyone. legalMoveCount must be precomputed by the caller (the search
// already has it from move generation).
func (p *Position) VariantResult(legalMoveCount int) (GameResult, bool) {
	var us = p.sideToMove
	var v = p.Variant

	if v == nil || v == StandardVariant {
		if legalMoveCount == 0 {
			if p.IsCheck() {
				return ResultLoss, true
			}
			return ResultDraw, true
		}
		return ResultNone, false
	}

	if v.Atomic {
		if p.KingSquare(us) == SquareNone {
			return ResultLoss, true
		}
		if p.KingSquare(us.Opposite()) == SquareNone {
			return ResultWin, true
		}
	}

	if len(v.ExtinctionPieceTypes) > 0 {
		for _, pt := range v.ExtinctionPieceTypes {
			if p.Count(us, pt) == 0 {
				return ResultLoss, true
			}
			if p.Count(us.Opposite(), pt) == 0 {
				return ResultWin, true
			}
		}
	}

	if v.KingOfTheHill {
		var hill = SquareBB[SquareD4] | SquareBB[SquareE4] | SquareBB[SquareD5] | SquareBB[SquareE5]
		if p.PiecesCP(us, King)&hill != 0 {
			return ResultWin, true
		}
		if p.PiecesCP(us.Opposite(), King)&hill != 0 {
			return ResultLoss, true
		}
	}

	if v.FlagSquares != 0 {
		var usOnFlag = p.PiecesCP(us, v.FlagPieceType)&v.FlagSquares != 0
		var oppOnFlag = p.PiecesCP(us.Opposite(), v.FlagPieceType)&v.FlagSquares != 0
		if usOnFlag && oppOnFlag {
			return ResultDraw, true
		}
		if usOnFlag {
			return ResultWin, true
		}
		if oppOnFlag {
			// Racing Kings grace: the opponent reached the flag squares on
			// their last move, but the race isn't over if we can still get
			// there ourselves this move — that reply is ours to take before
			// the result is final. If we take it, the position above (both
			// sides on the flag) turns this into a draw next call instead.
			if !p.hasFlagReply(us) {
				return ResultLoss, true
			}
			return ResultNone, false
		}
	}

	if v.ChecksToLose > 0 {
		if p.st.Checks[us.Opposite()] >= v.ChecksToLose {
			return ResultLoss, true
		}
		if p.st.Checks[us] >= v.ChecksToLose {
			return ResultWin, true
		}
	}

	if legalMoveCount == 0 {
		if v.LoseOnNoMoves {
			return ResultLoss, true
		}
		if !v.RoyalKing {
			return ResultWin, true // antichess: running out of pieces/moves with none forced is a win
		}
		if p.byColor[us] == 0 {
			return ResultLoss, true // horde: the side with no pieces left has lost
		}
		if p.IsCheck() {
			return ResultLoss, true
		}
		return ResultDraw, true
	}

	return ResultNone, false
}
