// Package engine runs a Lazy-SMP alpha-beta search over a Position,
// coordinating worker goroutines through a shared transposition table and
// reporting progress back through SearchInfo callbacks.
package engine

import (
	"context"
	"time"

	c "github.com/kagamivane/vairyfish/pkg/common"
	"github.com/kagamivane/vairyfish/pkg/eval"
)

type Engine struct {
	Options

	timeManager TimeManager
	transTable  *TransTable
	threads     []thread
	progress    func(SearchInfo)
	mainLine    mainLine
	start       time.Time
	nodes       int64
}

type thread struct {
	engine    *Engine
	position  *c.Position
	evaluator *eval.Service
	nodes     int64

	mainHistory         [1 << 13]int16
	continuationHistory [1024][1024]int16

	stack [stackSize]struct {
		moveList       [c.MaxMoves]OrderedMove
		quietsSearched [c.MaxMoves]c.Move
		pv             pv
		staticEval     int
		killer1        c.Move
		killer2        c.Move
	}
}

type pv struct {
	items [stackSize]c.Move
	size  int
}

type mainLine struct {
	moves []c.Move
	score int
	depth int
	nodes int64
}

// TimeManager decides when a running search must stop; simpleTimeManager
// is the only implementation, split out as an interface the way the
// original search kept it so a pondering or fixed-node variant could
// replace it without touching lazySmp.
type TimeManager interface {
	IsDone() bool
	OnNodesChanged(nodes int)
	OnIterationComplete(line mainLine)
	Close()
}

func NewEngine() *Engine {
	return &Engine{Options: NewOptions()}
}

func (e *Engine) Prepare() {
	if e.transTable == nil || e.transTable.Size() != e.Hash {
		e.transTable = NewTransTable(e.Hash)
	}
	if len(e.threads) != e.Threads {
		e.threads = make([]thread, e.Threads)
		for i := range e.threads {
			var t = &e.threads[i]
			t.engine = e
			t.evaluator = eval.NewService()
		}
	}
}

func (e *Engine) Search(ctx context.Context, params SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	var p = params.Position
	var limits = params.Limits
	if skillDepth := e.skillDepthLimit(); skillDepth != 0 && (limits.Depth == 0 || limits.Depth > skillDepth) {
		limits.Depth = skillDepth
	}
	var _, tm = newSimpleTimeManager(ctx, e.start, limits, p)
	e.timeManager = tm
	defer e.timeManager.Close()

	e.transTable.NewSearch()
	e.nodes = 0
	for i := range e.threads {
		var t = &e.threads[i]
		t.nodes = 0
		t.position = p.Clone()
	}
	e.progress = params.Progress
	lazySmp(e)
	for i := range e.threads {
		e.nodes += e.threads[i].nodes
		e.threads[i].nodes = 0
	}
	return e.currentSearchResult()
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	for i := range e.threads {
		e.threads[i].clearHistory()
	}
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.nodes,
		Time:     time.Since(e.start).Milliseconds(),
	}
}

func (pv *pv) clear() { pv.size = 0 }

func (pv *pv) assign(m c.Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []c.Move {
	var result = make([]c.Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}
