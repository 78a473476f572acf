package common

// StateInfo holds everything DoMove needs to restore on UndoMove that
// isn't cheap to recompute: the irreversible part of a position plus a
// handful of values the search wants without rescanning the board. One is
// pushed per ply onto Position.states; UndoMove pops it.
type StateInfo struct {
	// Copied from the previous state, then updated in place.
	CastlingRights int
	EpSquare       Square
	Rule50         int
	PliesFromNull  int
	Key            uint64
	MaterialKey    uint64
	PawnKey        uint64 // copied only: nothing computes it, so it stays 0
	Checks         [2]int // Three-Check: checks delivered by each side so far

	// Recomputed by DoMove from scratch.
	CapturedPiece PieceType
	DroppedPiece  PieceType
	Move          Move
	Checkers      Bitboard
	Repetition    int // never set (always 0); IsRepetition scans the state stack instead

	// Atomic: set when this move's capture triggered a blast. UndoMove
	// restores the attacker at its origin square instead of moving it
	// back from its (now-exploded) destination, then replays Exploded.
	AtomicExplosion bool
	Exploded        []explodedPiece

	Previous *StateInfo
}

// explodedPiece is one non-pawn piece removed from an Atomic blast
// radius, recorded so UndoMove can put it back where it stood.
type explodedPiece struct {
	Sq    Square
	Piece Piece
}
