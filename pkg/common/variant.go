package common

// VariantConfig toggles the rule deltas a Position needs to know about
// directly during move application and legality checks. The richer
// per-variant behavior (evaluation terms, win conditions, starting
// position) lives one level up in package variant; this struct only
// carries what DoMove/UndoMove/MoveGen/IsDraw need on the hot path.
type VariantConfig struct {
	Name string

	// Drops enables Crazyhouse/Bughouse-family piece drops and hand
	// bookkeeping; promoted pieces revert to pawns when captured.
	Drops bool

	// Atomic enables capture-blast explosions (see Position.explode).
	Atomic bool

	// ChecksToLose is the number of checks that end the game for Three-Check;
	// 0 disables check counting entirely.
	ChecksToLose int

	// MustCapture forces capture moves when available (Antichess) and, when
	// combined with LoseOnNoMoves below, a piece capturing an own piece is
	// not generated — MoveGen consults this directly.
	MustCapture bool

	// LoseOnNoMoves inverts the usual stalemate result: the side with no
	// legal moves loses rather than draws (Antichess/Losers-without-check).
	LoseOnNoMoves bool

	// RoyalKing false means the king can be captured like any other piece
	// and is never in "check" in the usual sense (Antichess, Extinction).
	RoyalKing bool

	// ExtinctionPieceTypes, if non-empty, lists the piece types whose total
	// loss ends the game for that side (Extinction chess generalizes
	// "loses all pawns", etc.); King is implicit when RoyalKing is true.
	ExtinctionPieceTypes []PieceType

	// KingOfTheHill: reaching one of the four center squares wins.
	KingOfTheHill bool

	// RacingKings: reaching the eighth rank first wins; no checks allowed.
	RacingKings bool

	// FlagSquares, when non-empty, lists squares that end the game once a
	// side's piece of FlagPieceType occupies one (Racing Kings uses "king";
	// VariantResult still grants the opponent one reply to reach the flag
	// squares too, which makes the game a draw).
	FlagPieceType PieceType
	FlagSquares   Bitboard

	// CaptureTheKingWins: a side that captures the enemy king wins on the
	// spot rather than the move being illegal (Extinction/Horde endgame).
	CaptureTheKingWins bool

	MaxRank Rank
	MaxFile File
}

// StandardVariant is orthodox chess: no rule deltas.
var StandardVariant = &VariantConfig{Name: "chess", RoyalKing: true, MaxRank: Rank8, MaxFile: FileH}
