package common

// GenType selects which subset of pseudo-legal moves GeneratePseudoLegal
// produces: a single-pass generator split into named stages rather than
// one "all moves" call every caller re-filters.
type GenType int

const (
	GenCaptures GenType = iota
	GenQuiets
	GenEvasions
	GenNonEvasions
	GenLegal
)

func addPromotions(ml []Move, from, to Square, captured PieceType) []Move {
	ml = append(ml, MakePawnMove(from, to, captured, Queen))
	ml = append(ml, MakePawnMove(from, to, captured, Rook))
	ml = append(ml, MakePawnMove(from, to, captured, Bishop))
	ml = append(ml, MakePawnMove(from, to, captured, Knight))
	return ml
}

// GeneratePseudoLegal appends every pseudo-legal move of genType to ml and
// returns the extended slice. "Pseudo-legal" here already respects check
// evasion targets but not pins — Legal() filters those afterward, the same
// split Stockfish's generate<LEGAL> makes.
func (p *Position) GeneratePseudoLegal(ml []Move, genType GenType) []Move {
	var us = p.sideToMove
	var them = us.Opposite()
	var own = p.byColor[us]
	var opp = p.byColor[them]
	var occ = own | opp

	var target Bitboard
	switch genType {
	case GenCaptures:
		target = opp
	case GenQuiets:
		target = ^occ
	default:
		target = ^own
	}
	if p.st.Checkers != 0 {
		var kingSq = p.KingSquare(us)
		var checkerSq = FirstOne(p.st.Checkers)
		target &= p.st.Checkers | BetweenBB(checkerSq, kingSq)
		if MoreThanOne(p.st.Checkers) {
			// double check: only the king can move
			ml = p.generateKingMoves(ml, us, occ, own, genType)
			return ml
		}
	}

	ml = p.generatePawnMoves(ml, us, own, opp, occ, target, genType)

	for pt := Knight; pt <= Queen; pt++ {
		for fromBB := p.PiecesCP(us, pt); fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			for toBB := AttacksBB(pt, from, occ) & target; toBB != 0; toBB &= toBB - 1 {
				var to = FirstOne(toBB)
				ml = append(ml, MakeMove(from, to, pt, p.board[to].Type()))
			}
		}
	}

	ml = p.generateKingMoves(ml, us, occ, own, genType)

	if genType != GenCaptures && p.st.Checkers == 0 {
		ml = p.generateCastling(ml, us, occ)
	}

	if p.Variant != nil && p.Variant.Drops && genType != GenCaptures {
		// drops land only on empty squares inside target (the blocking
		// squares when in check)
		ml = p.generateDrops(ml, us, occ|^target)
	}

	return ml
}

func (p *Position) generateKingMoves(ml []Move, us Color, occ, own Bitboard, genType GenType) []Move {
	var from = p.KingSquare(us)
	if from == SquareNone {
		return ml
	}
	var target Bitboard
	switch genType {
	case GenCaptures:
		target = p.byColor[us.Opposite()]
	case GenQuiets:
		target = ^occ
	default:
		target = ^own
	}
	for toBB := KingAttacksBB[from] & target; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		ml = append(ml, MakeMove(from, to, King, p.board[to].Type()))
	}
	return ml
}

func (p *Position) generatePawnMoves(ml []Move, us Color, own, opp, occ, target Bitboard, genType GenType) []Move {
	var them = us.Opposite()
	var pawns = p.PiecesCP(us, Pawn)
	var promoRank = RankBB[RelativeRank(us, Rank7)]
	var startRank = RankBB[RelativeRank(us, Rank2)]

	var push, push2 func(Bitboard) Bitboard
	if us == White {
		push = Up
		push2 = func(b Bitboard) Bitboard { return Up(Up(b)) }
	} else {
		push = Down
		push2 = func(b Bitboard) Bitboard { return Down(Down(b)) }
	}

	if genType != GenCaptures {
		for fromBB := pawns &^ promoRank; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			var one = push(SquareBB[from])
			if one&occ == 0 {
				if one&target != 0 {
					ml = append(ml, MakePawnMove(from, FirstOne(one), NoPieceType, NoPieceType))
				}
				if SquareBB[from]&startRank != 0 {
					var two = push2(SquareBB[from])
					if two&occ == 0 && two&target != 0 {
						ml = append(ml, MakePawnMove(from, FirstOne(two), NoPieceType, NoPieceType))
					}
				}
			}
		}
	}

	if genType != GenQuiets {
		for fromBB := pawns &^ promoRank; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			for toBB := PawnAttacksBB(us, from) & opp & target; toBB != 0; toBB &= toBB - 1 {
				var to = FirstOne(toBB)
				ml = append(ml, MakePawnMove(from, to, p.board[to].Type(), NoPieceType))
			}
		}
	}

	for fromBB := pawns & promoRank; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		if genType != GenCaptures {
			var one = push(SquareBB[from])
			if one&occ == 0 && one&target != 0 {
				ml = addPromotions(ml, from, FirstOne(one), NoPieceType)
			}
		}
		if genType != GenQuiets {
			for toBB := PawnAttacksBB(us, from) & opp & target; toBB != 0; toBB &= toBB - 1 {
				var to = FirstOne(toBB)
				ml = addPromotions(ml, from, to, p.board[to].Type())
			}
		}
	}

	if genType != GenQuiets && p.st.EpSquare != SquareNone {
		// An en passant capture removes the pawn at capSq, not at the
		// destination square, so the usual target mask (already Checkers|
		// Between when in check) only covers the blocking case by testing
		// it against the destination square; the capturing case needs its
		// own test against capSq.
		var capSq = p.st.EpSquare
		if us == White {
			capSq -= 8
		} else {
			capSq += 8
		}
		if p.st.Checkers == 0 || p.st.Checkers&SquareBB[capSq] != 0 || target&SquareBB[p.st.EpSquare] != 0 {
			for fromBB := PawnAttacksBB(them, p.st.EpSquare) & pawns; fromBB != 0; fromBB &= fromBB - 1 {
				var from = FirstOne(fromBB)
				ml = append(ml, MakeEnPassant(from, p.st.EpSquare))
			}
		}
	}

	return ml
}

func (p *Position) generateCastling(ml []Move, us Color, occ Bitboard) []Move {
	var king = p.KingSquare(us)
	for side := 0; side < 2; side++ {
		var rights = let(side == 0, let(us == White, WhiteOO, BlackOO), let(us == White, WhiteOOO, BlackOOO))
		if p.st.CastlingRights&rights == 0 {
			continue
		}
		var info = p.castling[us][side]
		if info.rookFrom == SquareNone {
			continue
		}
		var blockers = occ &^ SquareBB[king] &^ SquareBB[info.rookFrom]
		var kingPath = BetweenBB(king, info.kingTo) | SquareBB[info.kingTo]
		var rookPath = BetweenBB(info.rookFrom, info.rookTo) | SquareBB[info.rookTo]
		if blockers&(kingPath|rookPath) != 0 {
			continue
		}
		var clear = true
		for b := kingPath | SquareBB[king]; b != 0; b &= b - 1 {
			if p.isAttackedBySide(FirstOne(b), us.Opposite()) {
				clear = false
				break
			}
		}
		if clear {
			ml = append(ml, MakeCastling(king, info.kingTo))
		}
	}
	return ml
}

// generateDrops appends Crazyhouse/Bughouse piece drops: pawns may not
// drop on the first or last rank, everything else may drop on any empty
// square.
func (p *Position) generateDrops(ml []Move, us Color, occ Bitboard) []Move {
	var empty = ^occ
	for pt := Pawn; pt <= Queen; pt++ {
		if p.Hand[us][pt] == 0 {
			continue
		}
		var squares = empty
		if pt == Pawn {
			squares &^= RankBB[Rank1] | RankBB[Rank8]
		}
		for b := squares; b != 0; b &= b - 1 {
			ml = append(ml, MakeDrop(pt, FirstOne(b)))
		}
	}
	return ml
}

// PseudoLegal is a cheap plausibility check of m against the current
// position, used by the transposition table to reject a stored move that
// belongs to another position: a drop needs the piece in hand and an empty
// square; any other move needs the side to move's piece of m's type on
// from and no own piece on to. Whether the piece can actually reach to
// (sliding blockers, pawn direction, castling rights) is not checked.
func (p *Position) PseudoLegal(m Move) bool {
	if m == MoveNone || m.IsNull() {
		return false
	}
	var us = p.sideToMove
	if m.IsDrop() {
		return p.Variant != nil && p.Variant.Drops && p.Hand[us][m.DropPiece()] > 0 &&
			p.IsEmpty(m.To())
	}
	var from = m.From()
	var moved = p.board[from]
	if moved == NoPiece || moved.Color() != us || moved.Type() != m.MovingPiece() {
		return false
	}
	if p.byColor[us]&SquareBB[m.To()] != 0 {
		return false
	}
	return true
}

// Legal reports whether making m would leave the mover's own king in
// check (or, for non-royal variants, violates no additional rule) —
// callers must already know m is pseudo-legal.
func (p *Position) Legal(m Move) bool {
	var us = p.sideToMove
	if p.Variant != nil && p.Variant.RacingKings && p.GivesCheck(m) {
		return false
	}
	if p.Variant != nil && !p.Variant.RoyalKing {
		return true
	}
	var king = p.KingSquare(us)
	if king == SquareNone {
		return true
	}
	if m.IsCastling() {
		return true // generateCastling already checked the king's path
	}
	var from = m.From()
	if m.IsDrop() {
		return true
	}
	if m.IsEnPassant() {
		var capSq = m.To()
		if us == White {
			capSq -= 8
		} else {
			capSq += 8
		}
		var occ = (p.Occupied() &^ SquareBB[from] &^ SquareBB[capSq]) | SquareBB[m.To()]
		return p.AttackersTo(king, occ)&p.byColor[us.Opposite()]&
			(p.byType[Bishop]|p.byType[Rook]|p.byType[Queen]) == 0
	}
	if from == king {
		var occAfter = p.Occupied() &^ SquareBB[from]
		return p.attackersToOccupied(m.To(), occAfter)&p.byColor[us.Opposite()] == 0
	}
	var pinners Bitboard
	var blockers = p.SliderBlockers(p.byColor[us.Opposite()], king, &pinners)
	return blockers&SquareBB[from] == 0 || Aligned(from, m.To(), king)
}

func (p *Position) attackersToOccupied(sq Square, occ Bitboard) Bitboard {
	return (PawnAttacksBB(Black, sq) & occ & p.PiecesCP(White, Pawn)) |
		(PawnAttacksBB(White, sq) & occ & p.PiecesCP(Black, Pawn)) |
		(KnightAttacksBB[sq] & occ & p.byType[Knight]) |
		(KingAttacksBB[sq] & occ & p.byType[King]) |
		(BishopAttacksBB(sq, occ) & occ & (p.byType[Bishop] | p.byType[Queen])) |
		(RookAttacksBB(sq, occ) & occ & (p.byType[Rook] | p.byType[Queen]))
}

// LegalCaptures generates legal captures and promotions only, for
// quiescence search when the side to move isn't in check.
func (p *Position) LegalCaptures(ml []Move) []Move {
	var pseudo = p.GeneratePseudoLegal(ml[:0], GenCaptures)
	var out = pseudo[:0]
	for _, m := range pseudo {
		if p.Legal(m) {
			out = append(out, m)
		}
	}
	return out
}

// LegalMoves generates the fully filtered legal move list, applying the
// variant forced-capture rule (Antichess/Losers) when present.
func (p *Position) LegalMoves(ml []Move) []Move {
	var pseudo = p.GeneratePseudoLegal(ml[:0], GenNonEvasions)
	if p.st.Checkers != 0 {
		pseudo = p.GeneratePseudoLegal(ml[:0], GenEvasions)
	}
	var out = pseudo[:0]
	var haveCapture = false
	for _, m := range pseudo {
		if p.Legal(m) {
			out = append(out, m)
			if m.IsCapture() || m.IsEnPassant() {
				haveCapture = true
			}
		}
	}
	if p.Variant != nil && p.Variant.MustCapture && haveCapture {
		var captures = out[:0:0]
		for _, m := range out {
			if m.IsCapture() || m.IsEnPassant() {
				captures = append(captures, m)
			}
		}
		return captures
	}
	return out
}
