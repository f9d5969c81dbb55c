// Package heuristic scores positions for informed search.
package heuristic

import "github.com/domino14/huarongdao/board"

// Estimate returns the Manhattan distance from the 2x2 piece's anchor
// to the goal anchor. Every move slides one piece one cell, so the big
// piece needs at least this many slides of its own; the bound is
// admissible, and consistent because a single slide changes it by at
// most one.
func Estimate(b board.Board) int {
	a := b.BigAnchor()
	return abs(int(a.Row)-board.GoalRow) + abs(int(a.Col)-board.GoalCol)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
