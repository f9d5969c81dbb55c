// Package dfs implements a depth-first huarongdao solver. It returns
// the first solution its fixed exploration order runs into, which is
// rarely the shortest one; its value is as a baseline for the informed
// engine and as a guaranteed-terminating exhaustive search.
package dfs

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/movegen"
	"github.com/domino14/huarongdao/search"
)

const logEvery = 50000

// Solver runs depth-first searches. The zero value is usable; one
// solver can run any number of searches, but only one at a time.
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

// Solve searches depth-first from b and returns the solution path and
// expansion count, search.ErrNoSolution if the reachable space contains
// no goal, or search.ErrAborted on budget/context expiry. Visited
// states are recorded when popped, keyed by the board's canonical hash,
// so no state is expanded twice.
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
	visited := make(map[uint64]struct{})
	stack := []int32{arena.Add(b, search.NoParent, 0)}
	expanded := 0

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := arena.Board(idx)
		h := cur.Hash()
		if _, seen := visited[h]; seen {
			continue
		}
		visited[h] = struct{}{}
		expanded++
		if cur.IsGoal() {
			log.Debug().Int("expanded", expanded).
				Int32("moves", arena.G(idx)).Msg("dfs-solved")
			return &search.Result{Path: arena.Path(idx), Expanded: expanded}, nil
		}
		if s.nodeBudget > 0 && expanded >= s.nodeBudget {
			return nil, search.ErrAborted
		}
		if expanded%1024 == 0 && ctx.Err() != nil {
			return nil, search.ErrAborted
		}
		if expanded%logEvery == 0 {
			log.Debug().Int("expanded", expanded).
				Int("frontier", len(stack)).Msg("dfs-progress")
		}
		plays := s.gen.GenAll(cur)
		// Push in reverse so the lowest-ordered play is popped first,
		// keeping exploration order identical to the generator's order.
		for i := len(plays) - 1; i >= 0; i-- {
			if _, seen := visited[plays[i].Board.Hash()]; seen {
				continue
			}
			stack = append(stack, arena.Add(plays[i].Board, idx, arena.G(idx)+1))
		}
	}
	return nil, search.ErrNoSolution
}
