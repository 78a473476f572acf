package engine

import (
	"testing"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

func mustStartPosition(t *testing.T) *c.Position {
	t.Helper()
	var p = c.NewPosition(c.StandardVariant)
	if err := p.Set("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", c.StandardVariant); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return p
}

func TestTransTableStoreProbeRoundTrip(t *testing.T) {
	var tt = NewTransTable(1)
	var p = mustStartPosition(t)
	var buf [c.MaxMoves]c.Move
	var m = p.LegalMoves(buf[:0])[0]

	tt.Store(p.Key(), 7, 123, 45, boundExact, m, 0)

	var result = tt.Probe(p.Key(), p, 0)
	if !result.Hit {
		t.Fatal("expected a hit after Store")
	}
	if result.Depth != 7 || result.Value != 123 || result.EvalValue != 45 || result.Bound != boundExact {
		t.Errorf("Probe() = %+v, want depth=7 value=123 evalValue=45 bound=%d", result, boundExact)
	}
	if result.Move != m {
		t.Errorf("Probe() move = %v, want %v", result.Move, m)
	}
}

func TestTransTableProbeMissForUnknownKey(t *testing.T) {
	var tt = NewTransTable(1)
	var p = mustStartPosition(t)
	var result = tt.Probe(^p.Key(), p, 0)
	if result.Hit {
		t.Error("expected a miss for a key never stored")
	}
}

func TestTransTableStoreKeepsPreviousMoveWhenCallerHasNone(t *testing.T) {
	var tt = NewTransTable(1)
	var p = mustStartPosition(t)
	var buf [c.MaxMoves]c.Move
	var m = p.LegalMoves(buf[:0])[0]

	tt.Store(p.Key(), 4, 10, 10, boundExact, m, 0)
	tt.Store(p.Key(), 5, 20, 20, boundExact, c.MoveNone, 0)

	var result = tt.Probe(p.Key(), p, 0)
	if !result.Hit {
		t.Fatal("expected a hit")
	}
	if result.Move != m {
		t.Errorf("Probe() move = %v, want the previously stored move %v", result.Move, m)
	}
}

func TestTransTableClear(t *testing.T) {
	var tt = NewTransTable(1)
	var p = mustStartPosition(t)
	var buf [c.MaxMoves]c.Move
	var m = p.LegalMoves(buf[:0])[0]

	tt.Store(p.Key(), 3, 0, 0, boundExact, m, 0)
	tt.Clear()

	var result = tt.Probe(p.Key(), p, 0)
	if result.Hit {
		t.Error("expected a miss after Clear")
	}
}
