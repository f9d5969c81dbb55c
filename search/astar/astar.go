// Package astar implements an A* huarongdao solver guided by the
// Manhattan distance of the 2x2 piece. The heuristic is admissible and
// consistent, so the first goal popped carries a shortest solution.
package astar

import (
	"container/heap"
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/heuristic"
	"github.com/domino14/huarongdao/movegen"
	"github.com/domino14/huarongdao/search"
)

const logEvery = 50000

// entry is one frontier element. Entries are never updated in place:
// finding a cheaper route to a known state inserts a fresh entry, and
// the stale one is skipped when popped (lazy invalidation instead of
// decrease-key).
type entry struct {
	idx int32 // arena index
	f   int32
	g   int32
	seq int32 // insertion order, the final tie-break
}

type frontier []entry

func (f frontier) Len() int { return len(f) }

// Less orders by f ascending, ties by higher g (a deeper node's f rests
// on less estimate and more certainty), then by insertion order so runs
// are reproducible.
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	if f[i].g != f[j].g {
		return f[i].g > f[j].g
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}

// Solver runs A* searches. The zero value is usable; one solver can run
// any number of searches, but only one at a time.
type Solver struct {
	gen        *movegen.Generator
	nodeBudget int
}

func NewSolver() *Solver {
	return &Solver{gen: movegen.NewGenerator()}
}

// SetNodeBudget caps how many nodes one Solve may expand; 0 means
// unlimited. Exceeding the budget surfaces as search.ErrAborted.
func (s *Solver) SetNodeBudget(n int) {
	s.nodeBudget = n
}

// Solve searches from b and returns a shortest solution path and the
// expansion count, search.ErrNoSolution if the reachable space contains
// no goal, or search.ErrAborted on budget/context expiry.
func (s *Solver) Solve(ctx context.Context, b board.Board) (*search.Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, search.ErrAborted
	}
	if s.gen == nil {
		s.gen = movegen.NewGenerator()
	}
	arena := search.NewArena()
	// bestG maps canonical hash to the cheapest g discovered so far.
	// An entry popped with a worse g than bestG is stale and skipped.
	bestG := make(map[uint64]int32)
	var fr frontier
	var seq int32

	root := arena.Add(b, search.NoParent, 0)
	bestG[b.Hash()] = 0
	heap.Push(&fr, entry{idx: root, f: int32(heuristic.Estimate(b)), g: 0, seq: seq})
	expanded := 0

	for fr.Len() > 0 {
		e := heap.Pop(&fr).(entry)
		cur := arena.Board(e.idx)
		if g, ok := bestG[cur.Hash()]; ok && e.g > g {
			continue // stale duplicate
		}
		expanded++
		if cur.IsGoal() {
			log.Debug().Int("expanded", expanded).
				Int32("moves", e.g).Msg("astar-solved")
			return &search.Result{Path: arena.Path(e.idx), Expanded: expanded}, nil
		}
		if s.nodeBudget > 0 && expanded >= s.nodeBudget {
			return nil, search.ErrAborted
		}
		if expanded%1024 == 0 && ctx.Err() != nil {
			return nil, search.ErrAborted
		}
		if expanded%logEvery == 0 {
			log.Debug().Int("expanded", expanded).Int("frontier", fr.Len()).
				Int32("f", e.f).Msg("astar-progress")
		}
		for _, play := range s.gen.GenAll(cur) {
			ng := e.g + 1
			h := play.Board.Hash()
			if g, ok := bestG[h]; ok && g <= ng {
				continue
			}
			bestG[h] = ng
			seq++
			heap.Push(&fr, entry{
				idx: arena.Add(play.Board, e.idx, ng),
				f:   ng + int32(heuristic.Estimate(play.Board)),
				g:   ng,
				seq: seq,
			})
		}
	}
	return nil, search.ErrNoSolution
}
