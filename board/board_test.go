package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/huarongdao/move"
)

const classicGrid = `2113
2113
4665
4775
7007`

func TestParseRoundTrip(t *testing.T) {
	is := is.New(t)
	b, err := Parse(classicGrid)
	is.NoErr(err)
	is.Equal(b.String(), classicGrid)
}

func TestParsePieces(t *testing.T) {
	is := is.New(t)
	b, err := Parse(classicGrid)
	is.NoErr(err)

	id, p, ok := b.PieceAt(0, 1)
	is.True(ok)
	is.Equal(p.Kind, Big)
	is.Equal(p.Row, int8(0))
	is.Equal(p.Col, int8(1))
	id2, _, ok := b.PieceAt(1, 2)
	is.True(ok)
	is.Equal(id, id2) // all four cells belong to the same piece

	_, p, ok = b.PieceAt(2, 1)
	is.True(ok)
	is.Equal(p.Kind, Horizontal)

	_, p, ok = b.PieceAt(3, 1)
	is.True(ok)
	is.Equal(p.Kind, Single)

	_, _, ok = b.PieceAt(4, 1)
	is.True(!ok)

	is.Equal(b.EmptyCells(), []Cell{{4, 1}, {4, 2}})
}

func TestParseAdjacentSinglesAreNotADomino(t *testing.T) {
	is := is.New(t)
	// row 3 has "77" side by side; they must parse as two 1x1 pieces.
	b, err := Parse(classicGrid)
	is.NoErr(err)
	idA, pa, ok := b.PieceAt(3, 1)
	is.True(ok)
	idB, pb, ok := b.PieceAt(3, 2)
	is.True(ok)
	is.True(idA != idB)
	is.Equal(pa.Kind, Single)
	is.Equal(pb.Kind, Single)
}

func TestParseGreedyHorizontalPairs(t *testing.T) {
	is := is.New(t)
	b, err := Parse(`2113
2113
7777
6666
0660`)
	is.NoErr(err)
	// "6666" must split into two side-by-side dominoes.
	idA, pa, ok := b.PieceAt(3, 0)
	is.True(ok)
	is.Equal(pa.Kind, Horizontal)
	idB, pb, ok := b.PieceAt(3, 2)
	is.True(ok)
	is.Equal(pb.Kind, Horizontal)
	is.True(idA != idB)
}

func TestParseRejectsBadBoards(t *testing.T) {
	for _, tc := range []struct {
		name string
		grid string
	}{
		{"too few rows", "2113\n2113\n4665\n4775"},
		{"short row", "2113\n2113\n466\n4775\n7007"},
		{"three empties", "2113\n2113\n4665\n4705\n7007"},
		{"two big pieces", "2113\n2113\n1165\n1175\n7007"},
		{"ragged label", "2113\n2117\n4665\n4775\n7003"},
		{"unpaired domino", "2113\n2113\n4655\n4775\n7607"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.grid)
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalidBoard", tc.grid, err)
			}
		})
	}
}

func TestNewBoardRejectsOverlapAndBounds(t *testing.T) {
	is := is.New(t)
	valid := MustParse(classicGrid)
	pieces := make([]Piece, NumPieces)
	for i := range pieces {
		p, err := valid.Piece(i)
		is.NoErr(err)
		pieces[i] = p
	}

	bad := make([]Piece, NumPieces)
	copy(bad, pieces)
	bad[0].Col = 3 // vertical domino into the big piece's column
	_, err := NewBoard(bad)
	is.True(errors.Is(err, ErrInvalidBoard))

	copy(bad, pieces)
	bad[0].Row = 4 // vertical domino hanging off the bottom edge
	_, err = NewBoard(bad)
	is.True(errors.Is(err, ErrInvalidBoard))
}

func TestIsGoal(t *testing.T) {
	is := is.New(t)
	is.True(!MustParse(classicGrid).IsGoal())
	solved := MustParse(`2663
2773
4005
4115
7117`)
	is.True(solved.IsGoal())
	is.Equal(solved.BigAnchor(), Cell{GoalRow, GoalCol})
}

func TestCanonicalKeyIgnoresLabels(t *testing.T) {
	is := is.New(t)
	a := MustParse(classicGrid)
	// same structure, vertical dominoes renumbered and singles written
	// in a different discovery order
	b := MustParse(`4113
4113
2665
2775
7007`)
	is.Equal(a.CanonicalKey(), b.CanonicalKey())
	is.Equal(a.Hash(), b.Hash())
	is.True(a.Equal(b))

	c := MustParse(`2113
2113
4665
4775
7070`)
	is.True(a.CanonicalKey() != c.CanonicalKey())
	is.True(!a.Equal(c))
}

func TestCanonicalKeyShape(t *testing.T) {
	is := is.New(t)
	key := MustParse(classicGrid).CanonicalKey()
	is.Equal(key, "VBBVVBBVVHHVVSSVS..S")
}

func TestApplyMoveIsPure(t *testing.T) {
	is := is.New(t)
	b := MustParse(classicGrid)
	before := b.String()
	id, _, ok := b.PieceAt(4, 0)
	is.True(ok)
	nb, err := b.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Right})
	is.NoErr(err)
	is.Equal(b.String(), before) // parent untouched
	is.Equal(nb.EmptyCells(), []Cell{{4, 0}, {4, 2}})
	is.NoErr(nb.Validate())
}

func TestApplyMoveIllegal(t *testing.T) {
	is := is.New(t)
	b := MustParse(classicGrid)

	// the big piece is walled in on every side
	id, _, ok := b.PieceAt(0, 1)
	is.True(ok)
	for _, d := range move.Directions {
		_, err := b.ApplyMove(move.Move{PieceID: uint8(id), Dir: d})
		is.True(errors.Is(err, ErrIllegalMove))
	}

	// off the board
	id, _, ok = b.PieceAt(4, 3)
	is.True(ok)
	_, err := b.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Down})
	is.True(errors.Is(err, ErrIllegalMove))

	// bogus piece id
	_, err = b.ApplyMove(move.Move{PieceID: NumPieces, Dir: move.Up})
	is.True(errors.Is(err, ErrIllegalMove))
}

func TestMoveReversibility(t *testing.T) {
	is := is.New(t)
	b := MustParse(classicGrid)
	id, _, ok := b.PieceAt(3, 1)
	is.True(ok)
	m := move.Move{PieceID: uint8(id), Dir: move.Down}
	nb, err := b.ApplyMove(m)
	is.NoErr(err)
	back, err := nb.ApplyMove(move.Move{PieceID: m.PieceID, Dir: m.Dir.Opposite()})
	is.NoErr(err)
	is.True(b.Equal(back))
}

func TestBigPieceNeedsBothEmptiesToSlide(t *testing.T) {
	is := is.New(t)
	// big piece directly above two stacked empties slides down; above
	// only one empty it does not.
	b := MustParse(`2773
2663
4115
4115
7007`)
	id, p, ok := b.PieceAt(2, 1)
	is.True(ok)
	is.Equal(p.Kind, Big)
	nb, err := b.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Down})
	is.NoErr(err)
	is.True(nb.IsGoal())

	single := MustParse(`2773
2663
4115
4115
7070`)
	id, _, ok = single.PieceAt(2, 1)
	is.True(ok)
	_, err = single.ApplyMove(move.Move{PieceID: uint8(id), Dir: move.Down})
	is.True(errors.Is(err, ErrIllegalMove))
}
