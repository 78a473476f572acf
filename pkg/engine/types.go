package engine

import c "github.com/kagamivane/vairyfish/pkg/common"

// LimitsType is the UCI "go" command's parameters, carried through
// verbatim from pkg/uci.
type LimitsType struct {
	Ponder         bool
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
}

// SearchParams bundles the position to search (already played out to the
// current game state — history is read off Position's own StateInfo
// chain rather than a slice of Positions, since DoMove/UndoMove mutate a
// single Position in place) with the limits and a progress callback.
type SearchParams struct {
	Position *c.Position
	Limits   LimitsType
	Progress func(SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     int64
	MainLine []c.Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
