package engine

import (
	"errors"

	"golang.org/x/sync/errgroup"

	c "github.com/kagamivane/vairyfish/pkg/common"
)

var errSearchTimeout = errors.New("search timeout")

type searchTask struct {
	depth         int
	startingMove  c.Move // for move ordering
	startingScore int    // for aspirationWindow
}

// lazySmp runs e.Threads workers against independent clones of the root
// position, each pulling the next iterative-deepening depth off a shared
// task channel — a Lazy-SMP work-stealing shape, with an errgroup
// standing in for a raw WaitGroup since nothing here needs to fan an
// error back out (a timed-out thread just stops cleanly).
func lazySmp(e *Engine) {
	var ml = e.genRootMoves()
	if len(ml) != 0 {
		e.mainLine = mainLine{depth: 0, score: 0, nodes: 0, moves: []c.Move{ml[0]}}
	}
	if len(ml) <= 1 {
		return
	}

	var tasks = make(chan searchTask)
	var taskResults = make(chan mainLine)

	var g errgroup.Group
	for i := range e.threads {
		var t = &e.threads[i]
		var rootMoves = cloneMoves(ml)
		g.Go(func() error {
			searchDepth(t, rootMoves, tasks, taskResults)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(taskResults)
	}()

	iterativeDeepening(e, tasks, taskResults)
}

func iterativeDeepening(e *Engine, tasks chan<- searchTask, taskResults <-chan mainLine) {
	var searchCountByDepth [stackSize]int
	for {
		var task = searchTask{
			depth:         e.mainLine.depth + 1,
			startingMove:  e.mainLine.moves[0],
			startingScore: e.mainLine.score,
		}
		if task.depth < len(searchCountByDepth) &&
			searchCountByDepth[task.depth] >= (e.Threads+1)/2 {
			task.depth = e.mainLine.depth + 2
		}

		if task.depth > maxHeight || e.timeManager.IsDone() {
			if tasks != nil {
				close(tasks)
				tasks = nil
			}
		}

		select {
		case taskResult, ok := <-taskResults:
			if !ok {
				return
			}
			e.mainLine.nodes += taskResult.nodes
			if taskResult.depth > e.mainLine.depth {
				e.mainLine.depth = taskResult.depth
				e.mainLine.score = taskResult.score
				e.mainLine.moves = taskResult.moves
				e.timeManager.OnIterationComplete(e.mainLine)
				if e.progress != nil && e.mainLine.nodes >= int64(e.ProgressMinNodes) {
					e.progress(e.currentSearchResult())
				}
			}
		case tasks <- task:
			searchCountByDepth[task.depth]++
		}
	}
}

func searchDepth(t *thread, ml []c.Move, tasks <-chan searchTask, taskResults chan<- mainLine) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				return
			}
			panic(r)
		}
	}()

	const height = 0
	for h := 0; h <= 2; h++ {
		t.stack[h].killer1 = c.MoveNone
		t.stack[h].killer2 = c.MoveNone
	}

	for task := range tasks {
		if task.startingMove != c.MoveNone {
			if index := findMoveIndex(ml, task.startingMove); index >= 0 {
				moveToBegin(ml, index)
			}
		}
		var score = aspirationWindow(t, ml, task.depth, task.startingScore)
		taskResults <- mainLine{
			depth: task.depth,
			score: score,
			moves: t.stack[height].pv.toSlice(),
			nodes: t.nodes,
		}
		t.nodes = 0
	}
}
