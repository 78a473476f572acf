package common

import "testing"

// perft counts leaf nodes reached by playing out every legal move to depth,
// applying and unwinding each one with DoMove/UndoMove rather than cloning
// a child position per move.
func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var buf [MaxMoves]Move
	var moves = p.LegalMoves(buf[:0])
	if depth == 1 {
		return len(moves)
	}
	var nodes = 0
	for _, m := range moves {
		p.DoMove(m)
		nodes += perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

func newTestPosition(t *testing.T, fen string) *Position {
	t.Helper()
	var p = NewPosition(StandardVariant)
	if err := p.Set(fen, StandardVariant); err != nil {
		t.Fatalf("Set(%q): %v", fen, err)
	}
	return p
}

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 4, 197281},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
		{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p = newTestPosition(t, tt.fen)
			var nodes = perft(p, tt.depth)
			if nodes != tt.nodes {
				t.Errorf("perft(%d) = %d, want %d", tt.depth, nodes, tt.nodes)
			}
		})
	}
}

func TestPerftRestoresPosition(t *testing.T) {
	var p = newTestPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var before = p.Fen()
	perft(p, 3)
	if after := p.Fen(); after != before {
		t.Errorf("position not restored: got %q, want %q", after, before)
	}
}

func TestPerftChess960Castling(t *testing.T) {
	var p = newTestPosition(t, "nrkbbqrn/pppppppp/8/8/8/8/PPPPPPPP/NRKBBQRN w KQkq - 0 1")
	var nodes = perft(p, 3)
	if nodes == 0 {
		t.Fatal("expected a non-zero perft count for a Chess960 start position")
	}
}
