package search

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/move"
)

func TestArenaPath(t *testing.T) {
	is := is.New(t)
	b := board.MustParse(`2113
2113
4665
4775
7007`)
	id, _, ok := b.PieceAt(4, 0)
	is.True(ok)
	b1, err := b.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Right})
	is.NoErr(err)
	b2, err := b1.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Right})
	is.NoErr(err)

	a := NewArena()
	root := a.Add(b, NoParent, 0)
	n1 := a.Add(b1, root, 1)
	// a sibling that must not appear in the path
	a.Add(b1, root, 1)
	n2 := a.Add(b2, n1, 2)

	path := a.Path(n2)
	is.Equal(len(path), 3)
	is.True(path[0].Equal(b))
	is.True(path[1].Equal(b1))
	is.True(path[2].Equal(b2))

	// a root-only path is just the root
	is.Equal(len(a.Path(root)), 1)
	is.Equal(a.G(n2), int32(2))
	is.Equal(a.Len(), 4)
}

func TestResultMoves(t *testing.T) {
	is := is.New(t)
	r := &Result{Path: make([]board.Board, 5)}
	is.Equal(r.Moves(), 4)
}
