package engine

import c "github.com/kagamivane/vairyfish/pkg/common"

const pawnValue = 100

func aspirationWindow(t *thread, ml []c.Move, depth, prevScore int) int {
	var opts = &t.engine.Options
	if opts.AspirationWindows && depth >= 5 && !(prevScore <= valueLoss || prevScore >= valueWin) {
		const window = 25
		var alpha = c.Max(-valueInfinity, prevScore-window)
		var beta = c.Min(valueInfinity, prevScore+window)
		var score = searchRoot(t, ml, alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
		if score >= beta {
			beta = valueInfinity
		}
		if score <= alpha {
			alpha = -valueInfinity
		}
		score = searchRoot(t, ml, alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
	}
	return searchRoot(t, ml, -valueInfinity, valueInfinity, depth)
}

func searchRoot(t *thread, ml []c.Move, alpha, beta, depth int) int {
	const height = 0
	return t.alphaBeta(alpha, beta, depth, height, c.MoveNone)
}

// alphaBeta is the main search: it probes/stores the transposition table,
// applies the usual battery of pruning heuristics, and recurses through
// Position.DoMove/UndoMove rather than a copy-per-ply child position.
func (t *thread) alphaBeta(alpha, beta, depth, height int, skipMove c.Move) int {
	if depth <= 0 {
		return t.quiescence(alpha, beta, height)
	}
	t.clearPV(height)

	var rootNode = height == 0
	var pvNode = beta != alpha+1
	var position = t.position
	var isCheck = position.IsCheck()
	var ttMoveIsSingular = false

	if !rootNode {
		if height >= maxHeight {
			return int(t.evaluator.Evaluate(position))
		}
		if position.IsDraw() {
			return t.drawValue()
		}
		if result, ok := position.VariantResult(-1); ok && result != c.ResultNone {
			return variantResultValue(result, height)
		}
		if winIn(height+1) <= alpha {
			return alpha
		}
		if lossIn(height+2) >= beta && !isCheck {
			return beta
		}
	}

	var (
		ttDepth, ttValue, ttBound int
		ttMove                   c.Move
		ttHit                    bool
	)
	if skipMove == c.MoveNone {
		var probe = t.engine.transTable.Probe(position.Key(), position, height)
		ttHit = probe.Hit
		ttDepth, ttValue, ttBound, ttMove = probe.Depth, probe.Value, probe.Bound, probe.Move
	}
	if ttHit {
		if ttDepth >= depth && !pvNode && position.State().Move != c.MoveNone {
			if ttValue >= beta && (ttBound&boundLower) != 0 {
				if ttMove != c.MoveNone && !isCaptureOrPromotion(ttMove) {
					t.updateKiller(ttMove, height)
				}
				return ttValue
			}
			if ttValue <= alpha && (ttBound&boundUpper) != 0 {
				return ttValue
			}
		}
	}

	var staticEval = int(t.evaluator.Evaluate(position))
	t.stack[height].staticEval = staticEval
	var improving = height < 2 || staticEval > t.stack[height-2].staticEval

	var opts = &t.engine.Options
	if height+2 <= maxHeight {
		t.stack[height+2].killer1 = c.MoveNone
		t.stack[height+2].killer2 = c.MoveNone
	}

	if !rootNode && skipMove == c.MoveNone {

		if opts.ReverseFutility && !pvNode && depth <= 8 && !isCheck {
			var score = staticEval - pawnValue*depth
			if score >= beta {
				return staticEval
			}
		}

		if opts.NullMovePruning && !pvNode && depth >= 2 && !isCheck &&
			position.State().Move != c.MoveNone &&
			beta < valueWin &&
			!(ttHit && ttValue < beta && (ttBound&boundUpper) != 0) &&
			!isLateEndgame(position, position.SideToMove()) &&
			staticEval >= beta {
			var reduction = 4 + depth/6 + c.Min(2, (staticEval-beta)/200)
			position.DoNullMove()
			var score = -t.alphaBeta(-beta, -(beta - 1), depth-reduction, height+1, c.MoveNone)
			position.UndoNullMove()
			if score >= beta {
				if score >= valueWin {
					score = beta
				}
				return score
			}
		}

		var probcutBeta = c.Min(valueWin-1, beta+150)
		if opts.Probcut && !pvNode && depth >= 5 && !isCheck &&
			beta > valueLoss && beta < valueWin &&
			!(ttHit && ttDepth >= depth-4 && ttValue < probcutBeta && (ttBound&boundUpper) != 0) {

			var mi = moveIteratorQS{position: position, buffer: t.stack[height].moveList[:]}
			mi.Init()
			for mi.Reset(); ; {
				var move = mi.Next()
				if move == c.MoveNone {
					break
				}
				if !position.SeeGE(move, 0) {
					continue
				}
				position.DoMove(move)
				t.incNodes()
				var score = -t.quiescence(-probcutBeta, -probcutBeta+1, height+1)
				if score >= probcutBeta {
					score = -t.alphaBeta(-probcutBeta, -probcutBeta+1, depth-4, height+1, c.MoveNone)
				}
				position.UndoMove()
				if score >= probcutBeta {
					return score
				}
			}
		}

		if opts.SingularExt && depth >= 8 &&
			ttHit && ttMove != c.MoveNone &&
			(ttBound&boundLower) != 0 && ttDepth >= depth-3 &&
			ttValue > valueLoss && ttValue < valueWin {
			var singularBeta = c.Max(-valueInfinity, ttValue-depth)
			var score = t.alphaBeta(singularBeta-1, singularBeta, depth/2, height, ttMove)
			ttMoveIsSingular = score < singularBeta
		}
	}

	var historyContext = t.getHistoryContext(height)

	var mi = moveIterator{
		position:  position,
		buffer:    t.stack[height].moveList[:],
		history:   historyContext,
		transMove: ttMove,
		killer1:   t.stack[height].killer1,
		killer2:   t.stack[height].killer2,
	}
	mi.Init()
	var killer1 = t.stack[height].killer1
	var killer2 = t.stack[height].killer2

	var movesSearched = 0
	var hasLegalMove = false
	var quietsSeen = 0

	var quietsSearched = t.stack[height].quietsSearched[:0]
	var bestMove c.Move

	var lmp = 5 + (depth-1)*depth
	if !improving {
		lmp /= 2
	}

	var best = -valueInfinity
	var oldAlpha = alpha

	for mi.Reset(); ; {
		var move = mi.Next()
		if move == c.MoveNone {
			break
		}
		if move == skipMove {
			continue
		}
		hasLegalMove = true
		var isNoisy = isCaptureOrPromotion(move)
		if !isNoisy {
			quietsSeen++
		}

		if depth <= 8 && best > valueLoss && movesSearched > 0 && !isCheck && !rootNode {
			if opts.Lmp && !(isNoisy || move == killer1 || move == killer2) && quietsSeen > lmp {
				continue
			}
			if opts.Futility && !(isNoisy || move == killer1 || move == killer2) &&
				staticEval+100+pawnValue*depth <= alpha {
				continue
			}
			if opts.See {
				var seeMargin int
				if isNoisy {
					seeMargin = c.Max(depth, (staticEval+pawnValue-alpha)/pawnValue)
				} else {
					seeMargin = depth / 2
				}
				if !position.SeeGE(move, -seeMargin) {
					continue
				}
			}
		}

		position.DoMove(move)
		t.incNodes()
		movesSearched++

		var extension, reduction int
		var givesCheck = position.IsCheck()

		if opts.CheckExt && givesCheck && depth >= 3 {
			extension = 1
		}
		if move == ttMove && ttMoveIsSingular {
			extension = 1
		}

		if depth >= 3 && movesSearched > 1 && !isNoisy {
			reduction = opts.Lmr(depth, movesSearched)
			if move == killer1 || move == killer2 {
				reduction--
			}
			if !isCheck {
				var history = historyContext.ReadTotal(move)
				reduction -= c.Max(-2, c.Min(2, history/5000))
				if !improving {
					reduction++
				}
			}
			if pvNode {
				reduction -= 2
			}
			if isCheck || givesCheck {
				reduction--
			}
			reduction = c.Max(reduction, 0) + extension
			reduction = c.Max(0, c.Min(depth-2, reduction))
		}

		if !isNoisy {
			quietsSearched = append(quietsSearched, move)
		}

		var newDepth = depth - 1 + extension

		var score = alpha + 1
		if reduction > 0 {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth-reduction, height+1, c.MoveNone)
		}
		if score > alpha && pvNode && movesSearched > 1 && newDepth > 0 {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth, height+1, c.MoveNone)
		}
		if score > alpha {
			score = -t.alphaBeta(-beta, -alpha, newDepth, height+1, c.MoveNone)
		}

		position.UndoMove()

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}

	if !hasLegalMove {
		if result, ok := position.VariantResult(0); ok {
			return variantResultValue(result, height)
		}
		if !isCheck && skipMove == c.MoveNone {
			return t.drawValue()
		}
		return lossIn(height)
	}

	if alpha > oldAlpha && bestMove != c.MoveNone && !isCaptureOrPromotion(bestMove) {
		historyContext.Update(quietsSearched, bestMove, depth)
		t.updateKiller(bestMove, height)
	}

	if skipMove == c.MoveNone {
		var bound = 0
		if best > oldAlpha {
			bound |= boundLower
		}
		if best < beta {
			bound |= boundUpper
		}
		if !(rootNode && bound == boundUpper) {
			t.engine.transTable.Store(position.Key(), depth, best, staticEval, bound, bestMove, height)
		}
	}

	return best
}

// variantResultValue maps a VariantResult verdict for the side to move
// into a search score, keeping the usual sign convention (positive is
// good for the side to move) that valueDraw/lossIn/winIn already use.
func variantResultValue(result c.GameResult, height int) int {
	switch result {
	case c.ResultWin:
		return winIn(height)
	case c.ResultLoss:
		return lossIn(height)
	default:
		return valueDraw
	}
}

func (t *thread) quiescence(alpha, beta, height int) int {
	t.clearPV(height)
	var position = t.position
	if position.IsDraw() {
		return t.drawValue()
	}
	if height >= maxHeight {
		return int(t.evaluator.Evaluate(position))
	}

	var probe = t.engine.transTable.Probe(position.Key(), position, height)
	if probe.Hit {
		if probe.Bound == boundExact ||
			(probe.Bound == boundLower && probe.Value >= beta) ||
			(probe.Bound == boundUpper && probe.Value <= alpha) {
			return probe.Value
		}
	}

	var isCheck = position.IsCheck()
	var best = -valueInfinity
	if !isCheck {
		var evalScore = int(t.evaluator.Evaluate(position))
		best = c.Max(best, evalScore)
		if evalScore > alpha {
			alpha = evalScore
			if alpha >= beta {
				return alpha
			}
		}
	}
	var mi = moveIteratorQS{position: position, buffer: t.stack[height].moveList[:]}
	mi.Init()
	var hasLegalMove = false
	for mi.Reset(); ; {
		var move = mi.Next()
		if move == c.MoveNone {
			break
		}
		if !isCheck && !position.SeeGE(move, 0) {
			continue
		}
		hasLegalMove = true
		position.DoMove(move)
		t.incNodes()
		var score = -t.quiescence(-beta, -alpha, height+1)
		position.UndoMove()
		best = c.Max(best, score)
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}
	if isCheck && !hasLegalMove {
		return lossIn(height)
	}
	return best
}

func (t *thread) incNodes() {
	t.nodes++
	if t.nodes&255 == 0 {
		if t.engine.Threads == 1 {
			t.engine.timeManager.OnNodesChanged(int(t.engine.mainLine.nodes + t.nodes))
		}
		if t.engine.timeManager.IsDone() {
			panic(errSearchTimeout)
		}
	}
}

func findMoveIndex(ml []c.Move, move c.Move) int {
	for i := range ml {
		if ml[i] == move {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []c.Move, index int) {
	if index == 0 {
		return
	}
	var item = ml[index]
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = item
}

func cloneMoves(ml []c.Move) []c.Move {
	var result = make([]c.Move, len(ml))
	copy(result, ml)
	return result
}

func (e *Engine) genRootMoves() []c.Move {
	var t = &e.threads[0]
	return t.position.LegalMoves(make([]c.Move, 0, c.MaxMoves))
}

func (t *thread) updateKiller(move c.Move, height int) {
	if t.stack[height].killer1 != move {
		t.stack[height].killer2 = t.stack[height].killer1
		t.stack[height].killer1 = move
	}
}

func (t *thread) clearPV(height int) { t.stack[height].pv.clear() }

func (t *thread) assignPV(height int, move c.Move) {
	t.stack[height].pv.assign(move, &t.stack[height+1].pv)
}
