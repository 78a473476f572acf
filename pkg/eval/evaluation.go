// Package eval scores a Position for the search: material, pawn structure,
// mobility, and king safety, tapered between middlegame and endgame
// weights and tied into the endgame recognizers. Each Service allocates
// pawn and material cache tables, but Evaluate probes neither of them.
package eval

import (
	"github.com/kagamivane/vairyfish/pkg/cache"
	c "github.com/kagamivane/vairyfish/pkg/common"
	"github.com/kagamivane/vairyfish/pkg/endgame"
)

const totalPhase = 24

var phaseWeight = [c.PieceTypeNB]int{0, 0, 1, 1, 2, 4, 0}

var pieceValue = [c.PieceTypeNB]c.Score{
	0,
	c.MakeScore(100, 120),
	c.MakeScore(320, 290),
	c.MakeScore(330, 300),
	c.MakeScore(500, 520),
	c.MakeScore(975, 980),
	0,
}

// handPieceValue prices a piece sitting in hand slightly below its board
// value: Crazyhouse drops are flexible but tempo-negative.
var handPieceValue = [c.PieceTypeNB]c.Score{
	0,
	c.MakeScore(90, 110),
	c.MakeScore(280, 260),
	c.MakeScore(290, 270),
	c.MakeScore(440, 460),
	c.MakeScore(870, 880),
	0,
}

var passedBonus = [8]c.Score{
	0, c.MakeScore(5, 15), c.MakeScore(10, 25), c.MakeScore(15, 45),
	c.MakeScore(35, 80), c.MakeScore(70, 140), c.MakeScore(120, 220), 0,
}

var mobilityWeight = [c.PieceTypeNB]c.Score{
	0, 0,
	c.MakeScore(6, 5), c.MakeScore(5, 5), c.MakeScore(3, 5), c.MakeScore(2, 4), 0,
}

// Service is the per-search-thread evaluator: it owns its own pawn/material
// cache tables, so concurrent threads (see pkg/engine) never share one;
// Evaluate does not read or fill them.
type Service struct {
	pawns     *cache.PawnTable
	materials *cache.MaterialTable
}

func NewService() *Service {
	return &Service{
		pawns:     cache.NewPawnTable(15),
		materials: cache.NewMaterialTable(12),
	}
}

// Evaluate returns a score in centipawns from the side-to-move's point of
// view, folding in material, tapered positional terms, variant-specific
// hand material, and any endgame recognizer that claims this material.
func (s *Service) Evaluate(p *c.Position) c.Value {
	if fn, strongSide, ok := endgame.ProbeEvaluator(p); ok {
		if v := fn(p, strongSide); v != c.ValueNone {
			if p.SideToMove() != strongSide {
				return -v
			}
			return v
		}
	}

	var score c.Score
	var phase = 0

	for pt := c.Pawn; pt <= c.Queen; pt++ {
		var wc = p.Count(c.White, pt)
		var bc = p.Count(c.Black, pt)
		score += pieceValue[pt] * c.Score(wc-bc)
		phase += phaseWeight[pt] * (wc + bc)
	}

	if p.Variant != nil && p.Variant.Drops {
		for pt := c.Pawn; pt <= c.Queen; pt++ {
			score += handPieceValue[pt] * c.Score(p.Hand[c.White][pt]-p.Hand[c.Black][pt])
		}
	}

	score += s.evalPawns(p)
	score += evalMobility(p, c.White) - evalMobility(p, c.Black)
	score += evalKingSafety(p, c.White) - evalKingSafety(p, c.Black)
	score += evalVariantTerms(p, c.White) - evalVariantTerms(p, c.Black)

	if phase > totalPhase {
		phase = totalPhase
	}
	var mg = score.Mg()
	var eg = score.Eg()
	var v = (mg*phase + eg*(totalPhase-phase)) / totalPhase

	if scaler, strongSide, ok := endgame.ProbeScaler(p); ok {
		v = v * scaler(p, strongSide) / endgame.ScaleNormal
	}

	if p.SideToMove() == c.Black {
		return c.Value(-v)
	}
	return c.Value(v)
}

func (s *Service) evalPawns(p *c.Position) c.Score {
	var entry, hit = s.pawns.Probe(p)
	if hit {
		return entry.Score
	}
	var score c.Score
	var passed c.Bitboard

	for side := c.Color(c.White); side <= c.Black; side++ {
		var own = p.PiecesCP(side, c.Pawn)
		var opp = p.PiecesCP(side.Opposite(), c.Pawn)
		var sign = c.Score(1)
		if side == c.Black {
			sign = -1
		}
		for b := own; b != 0; b &= b - 1 {
			var sq = c.FirstOne(b)
			if isPassed(sq, side, opp, own) {
				passed |= c.SquareBB[sq]
				score += sign * passedBonus[c.RelativeRank(side, c.RankOf(sq))]
			}
			if c.AdjacentFilesBB(sq)&own == 0 {
				score -= sign * c.MakeScore(10, 15) // isolated
			}
		}
	}

	entry.Score = score
	entry.Passed = passed
	return score
}

func isPassed(sq c.Square, side c.Color, enemyPawns, ownPawns c.Bitboard) bool {
	var file = c.FileOf(sq)
	var aheadMask c.Bitboard
	if side == c.White {
		for r := int(c.RankOf(sq)) + 1; r <= int(c.Rank8); r++ {
			aheadMask |= c.RankBB[r]
		}
	} else {
		for r := int(c.RankOf(sq)) - 1; r >= int(c.Rank1); r-- {
			aheadMask |= c.RankBB[r]
		}
	}
	var span = aheadMask & (c.FileBB[file] | c.AdjacentFilesBB(sq))
	return span&enemyPawns == 0
}

func evalMobility(p *c.Position, side c.Color) c.Score {
	var score c.Score
	var occ = p.Occupied()
	var own = p.PiecesByColor(side)
	for pt := c.Knight; pt <= c.Queen; pt++ {
		for b := p.PiecesCP(side, pt); b != 0; b &= b - 1 {
			var sq = c.FirstOne(b)
			var attacks = c.AttacksBB(pt, sq, occ) &^ own
			score += mobilityWeight[pt] * c.Score(c.PopCount(attacks)-4)
		}
	}
	return score
}

func evalKingSafety(p *c.Position, side c.Color) c.Score {
	var king = p.KingSquare(side)
	if king == c.SquareNone {
		return 0
	}
	var shield = c.KingAttacksBB[king] & p.PiecesCP(side, c.Pawn)
	var score = c.MakeScore(6, 0) * c.Score(c.PopCount(shield))

	if p.Variant != nil && p.Variant.Atomic {
		// in Atomic, pieces packed around your own king are a liability,
		// not a shield: a single adjacent capture can blast the king too.
		var crowding = c.PopCount(c.KingAttacksBB[king] & p.PiecesByColor(side) &^ p.PiecesCP(side, c.Pawn))
		score -= c.MakeScore(15, 10) * c.Score(crowding)
	}
	return score
}
