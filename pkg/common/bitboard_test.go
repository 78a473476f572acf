package common

import "testing"

func TestFirstOne(t *testing.T) {
	var tests = []struct {
		name string
		b    Bitboard
		want Square
	}{
		{"a1", SquareBB[SquareA1], SquareA1},
		{"h8", SquareBB[SquareH8], SquareH8},
		{"e4 plus higher bits", SquareBB[SquareE4] | SquareBB[SquareH8], SquareE4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstOne(tt.b); got != tt.want {
				t.Errorf("FirstOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopCount(t *testing.T) {
	var tests = []struct {
		name string
		b    Bitboard
		want int
	}{
		{"empty", 0, 0},
		{"single", SquareBB[SquareD4], 1},
		{"rank1", Rank1BB, 8},
		{"whole board", ^Bitboard(0), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopCount(tt.b); got != tt.want {
				t.Errorf("PopCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoreThanOne(t *testing.T) {
	var tests = []struct {
		name string
		b    Bitboard
		want bool
	}{
		{"zero", 0, false},
		{"one", SquareBB[SquareA1], false},
		{"two", SquareBB[SquareA1] | SquareBB[SquareH8], true},
		{"rank1", Rank1BB, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.b); got != tt.want {
				t.Errorf("MoreThanOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKingAttacksCorner(t *testing.T) {
	var got = KingAttacksBB[SquareA1]
	var want = SquareBB[SquareA2] | SquareBB[SquareB2] | SquareBB[SquareB1]
	if got != want {
		t.Errorf("KingAttacksBB[A1] = %v, want %v", got, want)
	}
}

func TestKnightAttacksCenter(t *testing.T) {
	if PopCount(KnightAttacksBB[SquareD4]) != 8 {
		t.Errorf("knight on d4 should have 8 attacked squares, got %v", PopCount(KnightAttacksBB[SquareD4]))
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	var occ = SquareBB[SquareD1] | SquareBB[SquareD8] | SquareBB[SquareA4] | SquareBB[SquareH4]
	var attacks = RookAttacksBB(SquareD4, occ)
	if attacks&occ != occ {
		t.Errorf("rook should see every blocker on its rank/file, attacks=%v occ=%v", attacks, occ)
	}
	if attacks&SquareBB[SquareD5] == 0 {
		t.Error("rook should attack the empty square short of the d-file blocker")
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	var occ = SquareBB[SquareB2] | SquareBB[SquareG7]
	var attacks = BishopAttacksBB(SquareD4, occ)
	if attacks&SquareBB[SquareA1] != 0 {
		t.Error("bishop attack should stop at the blocker on b2, not reach past it to a1")
	}
}
