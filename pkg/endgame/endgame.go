// Package endgame recognizes material configurations that need special
// handling (wrong-colored bishop draws, KPK, pure-material scaling) beyond
// what the general evaluator's term pipeline gets right by default.
package endgame

import (
	c "github.com/kagamivane/vairyfish/pkg/common"
)

// Evaluator computes an exact or near-exact score for a recognized material
// configuration, replacing the general evaluator for that position.
type Evaluator func(p *c.Position, strongSide c.Color) c.Value

// Scaler adjusts a normally-computed endgame score toward a draw when the
// stronger side's material can't convert (e.g. a single extra minor piece).
type Scaler func(p *c.Position, strongSide c.Color) int // 0..64, 64 = full value

const ScaleNormal = 64

var evaluators = map[uint64]Evaluator{}
var scalers = map[uint64]Scaler{}

// materialKey is order-independent in the sense that it always encodes the
// "strong" side under White's Zobrist piece terms and the "weak" side under
// Black's, regardless of which color is actually playing which role in a
// given position — the registry's only notion of color is this strong/weak
// slot, not board color. Probing therefore has to build the same signature
// from the position twice, once per candidate strong side, and check both.
func materialKey(strongPieces, weakPieces map[c.PieceType]int) uint64 {
	var key uint64
	for pt, n := range strongPieces {
		key ^= c.ZobristPiece(c.MakePiece(c.White, pt), c.Square(n))
	}
	for pt, n := range weakPieces {
		key ^= c.ZobristPiece(c.MakePiece(c.Black, pt), c.Square(n))
	}
	return key
}

// materialSignature computes the same key materialKey would for a position,
// treating strongSide's piece counts as the "strong" side and the
// opponent's as the "weak" side; zero counts contribute nothing, matching
// how the registration maps simply omit piece types that aren't present.
func materialSignature(p *c.Position, strongSide c.Color) uint64 {
	var weakSide = strongSide.Opposite()
	var key uint64
	for pt := c.Pawn; pt <= c.King; pt++ {
		if n := p.Count(strongSide, pt); n > 0 {
			key ^= c.ZobristPiece(c.MakePiece(c.White, pt), c.Square(n))
		}
		if n := p.Count(weakSide, pt); n > 0 {
			key ^= c.ZobristPiece(c.MakePiece(c.Black, pt), c.Square(n))
		}
	}
	return key
}

func registerEvaluator(strong, weak map[c.PieceType]int, fn Evaluator) {
	evaluators[materialKey(strong, weak)] = fn
}

func registerScaler(strong, weak map[c.PieceType]int, fn Scaler) {
	scalers[materialKey(strong, weak)] = fn
}

// ProbeEvaluator returns the exact evaluator for this position's material,
// if the registry has one, along with which side it considers strong —
// tried as both White and Black since the registry has no idea which color
// actually holds the extra material in a given game.
func ProbeEvaluator(p *c.Position) (Evaluator, c.Color, bool) {
	if fn, ok := evaluators[materialSignature(p, c.White)]; ok {
		return fn, c.White, true
	}
	if fn, ok := evaluators[materialSignature(p, c.Black)]; ok {
		return fn, c.Black, true
	}
	return nil, c.White, false
}

func ProbeScaler(p *c.Position) (Scaler, c.Color, bool) {
	if fn, ok := scalers[materialSignature(p, c.White)]; ok {
		return fn, c.White, true
	}
	if fn, ok := scalers[materialSignature(p, c.Black)]; ok {
		return fn, c.Black, true
	}
	return nil, c.White, false
}

func init() {
	registerEvaluator(
		map[c.PieceType]int{c.King: 1, c.Pawn: 1},
		map[c.PieceType]int{c.King: 1},
		evalKPK,
	)
	registerScaler(
		map[c.PieceType]int{c.King: 1, c.Bishop: 1},
		map[c.PieceType]int{c.King: 1, c.Pawn: 1},
		scaleOppositeColoredBishop,
	)
}

// evalKPK is a rule-based king-and-pawn-vs-king classifier (draw when the
// defending king reaches the promotion square within the pawn's distance
// to promotion and ahead of the attacking king, otherwise a fixed winning
// score) rather than a precomputed bitbase — see SPEC_FULL.md §D
// for why a 24-bit Syzygy-style table wasn't worth building here.
func evalKPK(p *c.Position, strongSide c.Color) c.Value {
	var weakSide = strongSide.Opposite()
	var pawnBB = p.PiecesCP(strongSide, c.Pawn)
	if pawnBB == 0 {
		return c.ValueDraw
	}
	var pawnSq = c.FirstOne(pawnBB)
	var promoSq = c.MakeSquare(c.FileOf(pawnSq), c.RelativeRank(strongSide, c.Rank8))
	var defenderKing = p.KingSquare(weakSide)
	var attackerKing = p.KingSquare(strongSide)

	var pawnDist = int(c.Rank8) - int(c.RelativeRank(strongSide, c.RankOf(pawnSq)))
	var kingDist = c.SquareDistance(defenderKing, promoSq)
	var attackerDist = c.SquareDistance(attackerKing, promoSq)

	if kingDist-boolInt(p.SideToMove() == weakSide) <= pawnDist && kingDist < attackerDist {
		return c.ValueDraw
	}
	return c.Value(800)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// scaleOppositeColoredBishop halves the score whenever the board holds a
// single bishop; it does not look at the defending king's square or at the
// squares the bishop covers.
func scaleOppositeColoredBishop(p *c.Position, strongSide c.Color) int {
	var bishops = p.Pieces(c.Bishop)
	if c.MoreThanOne(bishops) {
		return ScaleNormal
	}
	return ScaleNormal / 2
}
