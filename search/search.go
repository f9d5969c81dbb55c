// Package search holds the plumbing shared by the DFS and A* engines:
// the node arena with integer parent links, path reconstruction, the
// result type and the engine error values.
package search

import (
	"errors"

	"github.com/samber/lo"

	"github.com/domino14/huarongdao/board"
)

var (
	// ErrNoSolution means the search exhausted every reachable position
	// without placing the big piece on the goal.
	ErrNoSolution = errors.New("no solution exists for this position")
	// ErrAborted means the engine hit its node budget or its context
	// was canceled before finishing.
	ErrAborted = errors.New("search aborted before completion")
)

// Result is a successful solve: the positions from the start board to
// the goal board inclusive, and how many nodes the engine expanded
// getting there.
type Result struct {
	Path     []board.Board
	Expanded int
}

// Moves is the solution length in moves (path length minus the start).
func (r *Result) Moves() int {
	return len(r.Path) - 1
}

// NoParent marks the root node of an arena.
const NoParent = int32(-1)

type node struct {
	b      board.Board
	parent int32
	g      int32
}

// Arena stores search nodes contiguously and addresses them by index,
// so parent links are plain int32s rather than pointers; g strictly
// increases along any parent chain, so the links always form a tree.
type Arena struct {
	nodes []node
}

func NewArena() *Arena {
	return &Arena{nodes: make([]node, 0, 1024)}
}

// Add appends a node and returns its index.
func (a *Arena) Add(b board.Board, parent, g int32) int32 {
	a.nodes = append(a.nodes, node{b: b, parent: parent, g: g})
	return int32(len(a.nodes) - 1)
}

// Board returns the position stored at idx.
func (a *Arena) Board(idx int32) board.Board {
	return a.nodes[idx].b
}

// G returns the move count from the start for the node at idx.
func (a *Arena) G(idx int32) int32 {
	return a.nodes[idx].g
}

// Len returns the number of stored nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Path reconstructs the start-to-goal board sequence by walking parent
// indices from goalIdx up to the root and reversing.
func (a *Arena) Path(goalIdx int32) []board.Board {
	path := make([]board.Board, 0, a.nodes[goalIdx].g+1)
	for idx := goalIdx; idx != NoParent; idx = a.nodes[idx].parent {
		path = append(path, a.nodes[idx].b)
	}
	return lo.Reverse(path)
}
