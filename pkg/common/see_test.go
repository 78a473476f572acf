package common

import "testing"

// seeTestMove finds the single legal move from `from` to `to` in p's move
// list, failing the test if it isn't there or isn't unique.
func seeTestMove(t *testing.T, p *Position, from, to Square) Move {
	t.Helper()
	var buf [MaxMoves]Move
	var found = MoveNone
	for _, m := range p.LegalMoves(buf[:0]) {
		if m.From() == from && m.To() == to {
			if found != MoveNone {
				t.Fatalf("ambiguous move %v-%v", from, to)
			}
			found = m
		}
	}
	if found == MoveNone {
		t.Fatalf("no legal move %v-%v in %q", from, to, p.Fen())
	}
	return found
}

func TestSeeGEPawnTakesPawn(t *testing.T) {
	// Pawn takes an undefended pawn: nothing recaptures, so White wins a pawn.
	var p = newTestPosition(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	var m = seeTestMove(t, p, SquareE4, SquareD5)
	if !p.SeeGE(m, 0) {
		t.Error("pawn takes undefended pawn should be SEE >= 0")
	}
	if p.SeeGE(m, seeValue[Pawn]+1) {
		t.Error("pawn takes pawn should not clear a threshold above its material gain")
	}
}

func TestSeeGEQueenTakesDefendedPawn(t *testing.T) {
	// Queen captures a pawn defended by another pawn: net loss of Q for P.
	var p = newTestPosition(t, "4k3/8/3p4/4p3/8/8/4Q3/4K3 w - - 0 1")
	var m = seeTestMove(t, p, SquareE2, SquareE5)
	if p.SeeGE(m, 0) {
		t.Error("queen takes pawn defended by pawn should be a losing trade (SEE < 0)")
	}
}

func TestSeeGERookTakesRookDefendedByQueen(t *testing.T) {
	// Rook takes rook, queen recaptures: net loss of R for R, fine (even trade).
	var p = newTestPosition(t, "4k3/8/4q3/8/8/8/4r3/4R3 w - - 0 1")
	var m = seeTestMove(t, p, SquareE1, SquareE2)
	if !p.SeeGE(m, 0) {
		t.Error("rook takes rook should be at least an even trade")
	}
	if p.SeeGE(m, 1) {
		t.Error("rook takes rook recaptured by queen should not be a net gain")
	}
}

func TestSeeGEDoesNotMutatePosition(t *testing.T) {
	var p = newTestPosition(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	var before = p.Fen()
	var m = seeTestMove(t, p, SquareE4, SquareD5)
	p.SeeGE(m, 0)
	if after := p.Fen(); after != before {
		t.Errorf("SeeGE mutated the position: got %q, want %q", after, before)
	}
}
