// Package variant resolves a UCI variant name to the rule configuration
// and starting position pkg/common and pkg/engine need to play it.
package variant

import (
	"fmt"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

// Definition bundles everything a variant needs beyond orthodox chess:
// the rule toggles DoMove/MoveGen consult directly, plus the bits that
// only the UCI layer and the evaluator care about.
type Definition struct {
	Name        string
	StartFEN    string
	Config      *c.VariantConfig
}

var registry = map[string]*Definition{}

func register(d *Definition) { registry[d.Name] = d }

// Lookup resolves a UCI variant option value (case already normalized by
// the caller) to its Definition, falling back to standard chess.
func Lookup(name string) *Definition {
	if d, ok := registry[name]; ok {
		return d
	}
	return registry["chess"]
}

// Names lists every registered variant, for the UCI "option" announcement.
func Names() []string {
	var names = make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

func init() {
	register(&Definition{
		Name:     "chess",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config:   c.StandardVariant,
	})

	register(&Definition{
		Name:     "atomic",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "atomic", RoyalKing: true, Atomic: true,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "crazyhouse",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "crazyhouse", RoyalKing: true, Drops: true,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "bughouse",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "bughouse", RoyalKing: true, Drops: true,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "3check",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 +0+0",
		Config: &c.VariantConfig{
			Name: "3check", RoyalKing: true, ChecksToLose: 3,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "antichess",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		Config: &c.VariantConfig{
			Name: "antichess", RoyalKing: false, MustCapture: true, LoseOnNoMoves: false,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "losers",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "losers", RoyalKing: true, MustCapture: true, LoseOnNoMoves: true,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "kingofthehill",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "kingofthehill", RoyalKing: true, KingOfTheHill: true,
			MaxRank: c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "racingkings",
		StartFEN: "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1",
		Config: &c.VariantConfig{
			Name: "racingkings", RoyalKing: true, RacingKings: true,
			FlagPieceType: c.King,
			FlagSquares:   c.RankBB[c.Rank8],
			MaxRank:       c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "horde",
		StartFEN: "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1",
		Config: &c.VariantConfig{
			Name: "horde", RoyalKing: true,
			ExtinctionPieceTypes: nil, // horde side loses when it has no pieces at all; VariantResult reports that as a loss
			MaxRank:               c.Rank8, MaxFile: c.FileH,
		},
	})

	register(&Definition{
		Name:     "extinction",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config: &c.VariantConfig{
			Name: "extinction", RoyalKing: false,
			ExtinctionPieceTypes: []c.PieceType{c.Pawn, c.Knight, c.Bishop, c.Rook, c.Queen, c.King},
			MaxRank:               c.Rank8, MaxFile: c.FileH,
		},
	})

	// Two-Kings gets the tag and FEN plumbing but falls back to the
	// orthodox ruleset otherwise; Relay, Knight-Relay and the grid variants
	// are not registered at all — see
	// SPEC_FULL.md §D for why these stop short of bespoke move-generation
	// support.
	register(&Definition{
		Name:     "twokings",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Config:   c.StandardVariant,
	})
}

// ValidateStartFEN is a light sanity check that d's start FEN parses
// under d's rule set; the UCI "position" handler does not call it.
func ValidateStartFEN(d *Definition) error {
	var p = c.NewPosition(d.Config)
	if err := p.Set(d.StartFEN, d.Config); err != nil {
		return fmt.Errorf("variant %s: %w", d.Name, err)
	}
	return nil
}
