// Package movegen enumerates the legal slides of a position.
package movegen

import (
	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/move"
)

// Play pairs a legal move with the position it produces.
type Play struct {
	Move  move.Move
	Board board.Board
}

// Generator produces successor positions. It keeps its plays slice
// between calls to avoid re-allocating per node; a search engine owns
// one generator for its whole run.
type Generator struct {
	plays []Play
}

func NewGenerator() *Generator {
	return &Generator{plays: make([]Play, 0, 16)}
}

// GenAll returns every legal (move, successor) for b in a fixed total
// order: piece id ascending, then direction in Up, Down, Left, Right
// order. The order is part of the contract; it decides which of several
// equally good solutions the engines report, so exploration stays
// reproducible. The returned slice is valid until the next GenAll call.
func (g *Generator) GenAll(b board.Board) []Play {
	g.plays = g.plays[:0]
	// A piece can only move if it borders an empty cell, but with ten
	// pieces and four directions the brute scan is 40 constant-time
	// checks; not worth an empty-neighbor index.
	for id := 0; id < board.NumPieces; id++ {
		for _, dir := range move.Directions {
			if !b.CanMove(id, dir) {
				continue
			}
			m := move.Move{PieceID: uint8(id), Dir: dir}
			nb, err := b.ApplyMove(m)
			if err != nil {
				// CanMove and ApplyMove agree by construction.
				panic(err)
			}
			g.plays = append(g.plays, Play{Move: m, Board: nb})
		}
	}
	return g.plays
}
