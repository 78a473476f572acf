package eval

import (
	c "github.com/kagamivane/vairyfish/pkg/common"
)

// centerSquares is the four-square hill King of the Hill races for.
var centerSquares = [4]c.Square{c.SquareD4, c.SquareE4, c.SquareD5, c.SquareE5}

// centerDistance holds, per square, the Chebyshev distance to the nearest
// of the four center squares — precomputed since it's probed every node
// for KotH but never changes.
var centerDistance [64]int

func init() {
	for sq := c.Square(0); sq < 64; sq++ {
		var best = 99
		for _, c2 := range centerSquares {
			var d = chebyshev(sq, c2)
			if d < best {
				best = d
			}
		}
		centerDistance[sq] = best
	}
}

func chebyshev(a, b c.Square) int {
	var df = int(c.FileOf(a)) - int(c.FileOf(b))
	var dr = int(c.RankOf(a)) - int(c.RankOf(b))
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// evalVariantTerms adds the handful of per-variant override terms the
// default tables don't cover: the ones where the tuned orthodox-chess
// weights would actively mislead a variant position rather than just be
// slightly off. Gated on the specific variant flag/name each term targets
// so calling this unconditionally from Evaluate is cheap for every variant
// that doesn't need it.
func evalVariantTerms(p *c.Position, side c.Color) c.Score {
	var v = p.Variant
	if v == nil {
		return 0
	}
	var score c.Score
	if v.KingOfTheHill {
		score += evalHillDistance(p, side)
	}
	if v.RacingKings {
		score += evalRaceAdvancement(p, side)
	}
	if v.ChecksToLose > 0 {
		score += evalCheckBonus(p, side)
	}
	if v.Name == "horde" {
		score += evalHordeShelter(p, side)
	}
	return score
}

// evalHillDistance rewards a king that's closer to the four center
// squares over one that isn't, scaled up sharply in the endgame where a
// King of the Hill race is actually decided.
func evalHillDistance(p *c.Position, side c.Color) c.Score {
	var king = p.KingSquare(side)
	if king == c.SquareNone {
		return 0
	}
	var d = centerDistance[king]
	return c.MakeScore(4, 12) * c.Score(6-d)
}

// evalRaceAdvancement rewards a king advanced toward the eighth rank,
// which both sides race for in Racing Kings regardless of color — there's
// no "relative rank" here, just absolute progress up the board.
func evalRaceAdvancement(p *c.Position, side c.Color) c.Score {
	var king = p.KingSquare(side)
	if king == c.SquareNone {
		return 0
	}
	return c.MakeScore(2, 10) * c.Score(c.RankOf(king))
}

// evalCheckBonus rewards a side that has already delivered checks toward
// Three-Check's threshold: a position one check away from winning is
// worth more than its material score alone suggests.
func evalCheckBonus(p *c.Position, side c.Color) c.Score {
	return c.MakeScore(10, 25) * c.Score(p.State().Checks[side])
}

// evalHordeShelter rewards the horde for keeping its pawn mass intact and
// packed: a horde that's been thinned or spread out is much closer to the
// extinction loss condition than its material count alone implies.
func evalHordeShelter(p *c.Position, side c.Color) c.Score {
	var pawns = p.PiecesCP(side, c.Pawn)
	var score c.Score
	for b := pawns; b != 0; b &= b - 1 {
		var sq = c.FirstOne(b)
		var neighbors = c.KingAttacksBB[sq] & pawns
		score += c.MakeScore(3, 1) * c.Score(c.PopCount(neighbors))
	}
	return score
}
