package common

func (p *Position) computeKey() uint64 {
	var key uint64
	for c := Color(White); c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for b := p.PiecesCP(c, pt); b != 0; b &= b - 1 {
				key ^= ZobristPiece(MakePiece(c, pt), FirstOne(b))
			}
			if p.Variant != nil && p.Variant.Drops {
				key ^= ZobristInHand(MakePiece(c, pt), p.Hand[c][pt])
			}
		}
	}
	if p.sideToMove == Black {
		key ^= ZobristSide()
	}
	return key
}

func (p *Position) computeMaterialKey() uint64 {
	var key uint64
	for c := Color(White); c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for cnt := 0; cnt < p.pieceCount[c][pt]; cnt++ {
				key ^= ZobristPiece(MakePiece(c, pt), Square(cnt))
			}
		}
	}
	return key
}

func (p *Position) pushState() *StateInfo {
	var prev = p.st
	p.states = append(p.states, StateInfo{
		CastlingRights: prev.CastlingRights,
		EpSquare:       SquareNone,
		Rule50:         prev.Rule50 + 1,
		PliesFromNull:  prev.PliesFromNull + 1,
		Key:            prev.Key,
		MaterialKey:    prev.MaterialKey,
		PawnKey:        prev.PawnKey,
		Checks:         prev.Checks,
		Previous:       prev,
	})
	p.st = &p.states[len(p.states)-1]
	return p.st
}

// DoMove applies m in place and advances the side to move, pushing a fresh
// StateInfo that UndoMove later pops. Both legal and (when the caller has
// already checked PseudoLegal+Legal) pseudo-legal callers use it; search
// never allocates a child Position per move, applying and unwinding moves
// on the one board in place instead.
func (p *Position) DoMove(m Move) {
	var us = p.sideToMove
	var them = us.Opposite()
	var from = m.From()
	var to = m.To()

	var st = p.pushState()
	st.Move = m
	st.CapturedPiece = NoPieceType
	st.DroppedPiece = NoPieceType

	if p.st.Previous.EpSquare != SquareNone {
		st.Key ^= ZobristEnPassant(FileOf(p.st.Previous.EpSquare))
	}

	if m.IsDrop() {
		var pt = m.DropPiece()
		p.Hand[us][pt]--
		st.Key ^= ZobristInHand(MakePiece(us, pt), p.Hand[us][pt]) ^ ZobristInHand(MakePiece(us, pt), p.Hand[us][pt]+1)
		p.putPiece(MakePiece(us, pt), to)
		st.Key ^= ZobristPiece(MakePiece(us, pt), to)
		st.DroppedPiece = pt
		st.Rule50 = 0
	} else {
		var movingPiece = MakePiece(us, m.MovingPiece())

		if m.IsCastling() {
			p.doCastling(us, from, to, st)
		} else {
			if m.IsEnPassant() {
				var capSq = to
				if us == White {
					capSq -= 8
				} else {
					capSq += 8
				}
				p.captureAt(capSq, them, st, Pawn)
			} else if m.CapturedPiece() != NoPieceType {
				p.captureAt(to, them, st, m.CapturedPiece())
			}

			st.Key ^= ZobristPiece(movingPiece, from) ^ ZobristPiece(movingPiece, to)
			p.movePiece(from, to)

			if m.IsPromotion() {
				p.removePiece(to)
				p.putPiece(MakePiece(us, m.Promotion()), to)
				st.Key ^= ZobristPiece(movingPiece, to) ^ ZobristPiece(MakePiece(us, m.Promotion()), to)
				if p.Variant != nil && p.Variant.Drops {
					p.Promoted |= SquareBB[to]
				}
			}
		}

		if m.MovingPiece() == Pawn {
			st.Rule50 = 0
			if absInt(int(to)-int(from)) == 16 {
				var epSq = Square((int(from) + int(to)) / 2)
				if p.pawnCanCaptureEp(them, epSq) {
					st.EpSquare = epSq
					st.Key ^= ZobristEnPassant(FileOf(epSq))
				}
			}
		} else if m.CapturedPiece() != NoPieceType {
			st.Rule50 = 0
		}

		st.CastlingRights &= p.castlingRightsMaskAfter(from) & p.castlingRightsMaskAfter(to)
	}

	if p.Variant != nil && p.Variant.Atomic && (m.IsCapture() || m.IsEnPassant()) {
		p.explode(to, st)
	}

	p.sideToMove = them
	st.Key ^= ZobristSide()

	st.Checkers = 0
	if kingSq := p.KingSquare(them); kingSq != SquareNone {
		st.Checkers = p.attackersTo(kingSq) & p.byColor[us]
	}
	if p.IsCheck() && p.Variant != nil && p.Variant.ChecksToLose > 0 {
		st.Key ^= ZobristChecks(us, st.Checks[us])
		st.Checks[us]++
		st.Key ^= ZobristChecks(us, st.Checks[us])
	}
	st.MaterialKey = p.computeMaterialKey()
	p.gamePly++
}

func (p *Position) captureAt(sq Square, capturedColor Color, st *StateInfo, pt PieceType) {
	var captured = MakePiece(capturedColor, pt)
	if p.Variant != nil && p.Variant.Drops {
		var handPt = pt
		if p.Promoted&SquareBB[sq] != 0 {
			handPt = Pawn
			p.Promoted &^= SquareBB[sq]
		}
		p.Hand[capturedColor.Opposite()][handPt]++
		st.Key ^= ZobristInHand(MakePiece(capturedColor.Opposite(), handPt), p.Hand[capturedColor.Opposite()][handPt]) ^
			ZobristInHand(MakePiece(capturedColor.Opposite(), handPt), p.Hand[capturedColor.Opposite()][handPt]-1)
	}
	p.removePiece(sq)
	st.Key ^= ZobristPiece(captured, sq)
	st.CapturedPiece = pt
	st.Rule50 = 0
}

func (p *Position) doCastling(us Color, from, to Square, st *StateInfo) {
	var side = 0
	if to == p.castling[us][1].kingTo {
		side = 1
	}
	var info = p.castling[us][side]
	var king = MakePiece(us, King)
	var rook = MakePiece(us, Rook)

	st.Key ^= ZobristPiece(king, from) ^ ZobristPiece(king, info.kingTo)
	st.Key ^= ZobristPiece(rook, info.rookFrom) ^ ZobristPiece(rook, info.rookTo)

	p.removePiece(from)
	if !(info.rookFrom == from) {
		p.removePiece(info.rookFrom)
	}
	p.putPiece(king, info.kingTo)
	if info.rookTo != info.kingTo {
		p.putPiece(rook, info.rookTo)
	}
}

func (p *Position) pawnCanCaptureEp(them Color, epSq Square) bool {
	return PawnAttacksBB(them.Opposite(), epSq)&p.PiecesCP(them, Pawn) != 0
}

func (p *Position) castlingRightsMaskAfter(sq Square) int {
	var mask = WhiteOO | WhiteOOO | BlackOO | BlackOOO
	for c := Color(White); c <= Black; c++ {
		for side := 0; side < 2; side++ {
			var info = p.castling[c][side]
			if sq == info.rookFrom || sq == p.KingSquare(c) {
				if side == 0 {
					mask &^= let(c == White, WhiteOO, BlackOO)
				} else {
					mask &^= let(c == White, WhiteOOO, BlackOOO)
				}
			}
		}
	}
	return mask
}

// explode implements Atomic chess: every non-pawn piece within one square
// of the captured piece is removed, including both kings if caught in the
// blast (that loss is detected by the caller via VariantResult).
func (p *Position) explode(sq Square, st *StateInfo) {
	st.AtomicExplosion = true
	st.Key ^= ZobristPiece(p.board[sq], sq)
	p.removePiece(sq)
	for b := KingAttacksBB[sq] & p.Occupied(); b != 0; b &= b - 1 {
		var s = FirstOne(b)
		if p.board[s].Type() == Pawn {
			continue
		}
		var piece = p.board[s]
		st.Key ^= ZobristPiece(piece, s)
		st.Exploded = append(st.Exploded, explodedPiece{Sq: s, Piece: piece})
		p.removePiece(s)
	}
}

// UndoMove reverses the last DoMove, restoring the board to the exact
// state before it and popping the StateInfo stack.
func (p *Position) UndoMove() {
	var st = p.st
	var m = st.Move
	p.sideToMove = p.sideToMove.Opposite()
	var us = p.sideToMove
	var from = m.From()
	var to = m.To()

	if m.IsDrop() {
		var pt = m.DropPiece()
		p.removePiece(to)
		p.Hand[us][pt]++
	} else if st.AtomicExplosion {
		// The attacker and everything it blasted are gone from the
		// board entirely (not just moved), so there's nothing at `to`
		// to move back from — rebuild from() and the blast radius
		// directly instead of the movePiece/undoCastling paths below.
		p.putPiece(MakePiece(us, m.MovingPiece()), from)
		if m.IsEnPassant() {
			var capSq = to
			if us == White {
				capSq -= 8
			} else {
				capSq += 8
			}
			p.restoreCaptured(capSq, us.Opposite(), st, Pawn)
		} else if st.CapturedPiece != NoPieceType {
			p.restoreCaptured(to, us.Opposite(), st, st.CapturedPiece)
		}
		for _, exp := range st.Exploded {
			p.putPiece(exp.Piece, exp.Sq)
		}
	} else {
		if m.IsPromotion() {
			p.removePiece(to)
			p.putPiece(MakePiece(us, m.MovingPiece()), to)
		}
		if m.IsCastling() {
			p.undoCastling(us, from, to)
		} else {
			p.movePiece(to, from)
			if m.IsEnPassant() {
				var capSq = to
				if us == White {
					capSq -= 8
				} else {
					capSq += 8
				}
				p.restoreCaptured(capSq, us.Opposite(), st, Pawn)
			} else if st.CapturedPiece != NoPieceType {
				p.restoreCaptured(to, us.Opposite(), st, st.CapturedPiece)
			}
		}
	}

	p.gamePly--
	p.states = p.states[:len(p.states)-1]
	p.st = st.Previous
}

func (p *Position) restoreCaptured(sq Square, capturedColor Color, st *StateInfo, pt PieceType) {
	p.putPiece(MakePiece(capturedColor, pt), sq)
	if p.Variant != nil && p.Variant.Drops {
		var handPt = pt
		if p.Promoted&SquareBB[sq] != 0 {
			handPt = Pawn
		}
		p.Hand[capturedColor.Opposite()][handPt]--
	}
}

func (p *Position) undoCastling(us Color, from, to Square) {
	var side = 0
	if to == p.castling[us][1].kingTo {
		side = 1
	}
	var info = p.castling[us][side]
	p.removePiece(info.kingTo)
	if info.rookTo != info.kingTo {
		p.removePiece(info.rookTo)
	}
	p.putPiece(MakePiece(us, King), from)
	if info.rookFrom != from {
		p.putPiece(MakePiece(us, Rook), info.rookFrom)
	}
}

// DoNullMove flips the side to move without moving a piece, used by the
// search's null-move pruning.
func (p *Position) DoNullMove() {
	var st = p.pushState()
	st.Move = MoveNull
	if p.st.Previous.EpSquare != SquareNone {
		st.Key ^= ZobristEnPassant(FileOf(p.st.Previous.EpSquare))
	}
	st.EpSquare = SquareNone
	p.sideToMove = p.sideToMove.Opposite()
	st.Key ^= ZobristSide()
	st.Checkers = 0
	p.gamePly++
}

func (p *Position) UndoNullMove() {
	var st = p.st
	p.sideToMove = p.sideToMove.Opposite()
	p.gamePly--
	p.states = p.states[:len(p.states)-1]
	p.st = st.Previous
}
