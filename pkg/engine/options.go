package engine

import (
	"math"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

// Options bundles the engine's UCI-tunable knobs and the search pruning
// toggles alphaBeta consults — split out from Engine and embedded in it,
// so a caller sets them on the Engine (NewEngine fills them from
// NewOptions) without reaching into search.go.
type Options struct {
	Hash               int
	Threads            int
	ExperimentSettings bool
	ProgressMinNodes   int
	MultiPV            int
	Contempt           int
	SkillLevel         int
	Chess960           bool
	Variant            string
	SyzygyPath         string

	AspirationWindows bool
	ReverseFutility   bool
	NullMovePruning   bool
	Probcut           bool
	SingularExt       bool
	CheckExt          bool
	Lmp               bool
	Futility          bool
	See               bool

	reductions [64][64]int
}

func NewOptions() Options {
	var o = Options{
		Hash:               16,
		Threads:            1,
		ProgressMinNodes:   1_000_000,
		MultiPV:            1,
		SkillLevel:         20,
		Variant:            "chess",
		AspirationWindows:  true,
		ReverseFutility:    true,
		NullMovePruning:    true,
		Probcut:            true,
		SingularExt:        true,
		CheckExt:           true,
		Lmp:                true,
		Futility:           true,
		See:                true,
	}
	o.InitLmr(LmrMult)
	return o
}

func (o *Options) Lmr(d, m int) int {
	return o.reductions[c.Min(d, 63)][c.Min(m, 63)]
}

// skillDepthLimit caps search depth for SkillLevel < 20, a simplified
// stand-in for randomized move-choice weakening: cheaper to reason about
// than per-move noise, at the cost of the weakened engine playing its
// reduced-depth move deterministically.
func (e *Engine) skillDepthLimit() int {
	if e.SkillLevel >= 20 {
		return 0
	}
	return 1 + e.SkillLevel*19/20
}

func (o *Options) InitLmr(f func(d, m float64) float64) {
	initLmr(&o.reductions, f)
}

func initLmr(reductions *[64][64]int, f func(d, m float64) float64) {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			reductions[d][m] = int(f(float64(d), float64(m)))
		}
	}
}

func LmrMult(d, m float64) float64 {
	return lirp(math.Log(d)*math.Log(m), math.Log(5)*math.Log(22), math.Log(63)*math.Log(63), 3, 8)
}

func lirp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
