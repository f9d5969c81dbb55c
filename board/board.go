// Package board models a huarongdao (Klotski) position: a 5x4 grid
// holding one 2x2 piece, five 1x2 pieces, four 1x1 pieces and two empty
// cells. A Board is a value; applying a move yields a new Board and
// never mutates the receiver, so parents can be shared freely across
// branches of a search tree.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/huarongdao/move"
)

const (
	NumRows = 5
	NumCols = 4
	// NumPieces is fixed for this puzzle: 1 big, 5 dominoes, 4 singles.
	NumPieces = 10
	NumEmpty  = 2
)

// GoalRow and GoalCol locate the anchor cell the big piece must reach:
// the bottom-center target region.
const (
	GoalRow = 3
	GoalCol = 1
)

var (
	ErrInvalidBoard = errors.New("board violates huarongdao invariants")
	ErrIllegalMove  = errors.New("illegal move")
)

// PieceKind is the shape of a piece.
type PieceKind uint8

const (
	Single PieceKind = iota // 1x1
	Horizontal              // 1x2, lying
	Vertical                // 2x1, standing
	Big                     // 2x2
)

func (k PieceKind) String() string {
	switch k {
	case Single:
		return "single"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Big:
		return "big"
	}
	return "unknown"
}

// canonical cell codes, one per kind. Label-free: two boards that place
// the same kinds on the same cells share a key no matter how the input
// numbered its pieces.
var kindCode = [4]byte{'S', 'H', 'V', 'B'}

const emptyCode = '.'

// footprint extents per kind, rows x cols.
func (k PieceKind) extents() (int8, int8) {
	switch k {
	case Horizontal:
		return 1, 2
	case Vertical:
		return 2, 1
	case Big:
		return 2, 2
	}
	return 1, 1
}

// Piece is a piece descriptor: its kind, anchor (top-left occupied
// cell) and the display label it was parsed with. The piece id is its
// index in the board's piece array and is stable across moves.
type Piece struct {
	Kind  PieceKind
	Row   int8
	Col   int8
	Label byte
}

// Cell is a grid coordinate.
type Cell struct {
	Row int8
	Col int8
}

const noPiece = int8(-1)

// Board is an immutable position. The grid caches, for each cell, the
// index of the covering piece (or -1); it is derived from the piece
// array at construction and the two stay consistent by construction.
type Board struct {
	pieces [NumPieces]Piece
	grid   [NumRows][NumCols]int8
	bigIdx int8
}

// NewBoard builds a Board from exactly NumPieces piece descriptors,
// validating the position invariants: in-bounds footprints, no
// overlaps, the fixed kind multiset, and exactly two empty cells.
func NewBoard(pieces []Piece) (Board, error) {
	var b Board
	if len(pieces) != NumPieces {
		return b, fmt.Errorf("%w: got %d pieces, want %d", ErrInvalidBoard,
			len(pieces), NumPieces)
	}
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			b.grid[r][c] = noPiece
		}
	}
	b.bigIdx = noPiece
	var kindCounts [4]int
	for i, p := range pieces {
		b.pieces[i] = p
		kindCounts[p.Kind]++
		if p.Kind == Big {
			b.bigIdx = int8(i)
		}
		er, ec := p.Kind.extents()
		if p.Row < 0 || p.Col < 0 || p.Row+er > NumRows || p.Col+ec > NumCols {
			return b, fmt.Errorf("%w: piece %d (%v) at %d,%d exceeds the grid",
				ErrInvalidBoard, i, p.Kind, p.Row, p.Col)
		}
		for dr := int8(0); dr < er; dr++ {
			for dc := int8(0); dc < ec; dc++ {
				r, c := p.Row+dr, p.Col+dc
				if b.grid[r][c] != noPiece {
					return b, fmt.Errorf("%w: pieces %d and %d overlap at %d,%d",
						ErrInvalidBoard, b.grid[r][c], i, r, c)
				}
				b.grid[r][c] = int8(i)
			}
		}
	}
	if kindCounts[Big] != 1 || kindCounts[Single] != 4 ||
		kindCounts[Horizontal]+kindCounts[Vertical] != 5 {
		return b, fmt.Errorf(
			"%w: kind multiset is %d big, %d dominoes, %d singles; want 1, 5, 4",
			ErrInvalidBoard, kindCounts[Big],
			kindCounts[Horizontal]+kindCounts[Vertical], kindCounts[Single])
	}
	// 20 cells, 18 covered by the fixed multiset; the empty count is
	// implied, but verify anyway so a bad extents bug cannot slip through.
	if n := len(b.EmptyCells()); n != NumEmpty {
		return b, fmt.Errorf("%w: %d empty cells, want %d", ErrInvalidBoard,
			n, NumEmpty)
	}
	return b, nil
}

// Validate re-checks the construction invariants. Boards built by this
// package always pass; the check exists for positions handed in from
// outside, which the search engines run before expanding anything.
func (b Board) Validate() error {
	_, err := NewBoard(b.pieces[:])
	return err
}

// Piece returns the descriptor for a piece id.
func (b Board) Piece(id int) (Piece, error) {
	if id < 0 || id >= NumPieces {
		return Piece{}, fmt.Errorf("%w: no piece with id %d", ErrIllegalMove, id)
	}
	return b.pieces[id], nil
}

// PieceAt returns the piece covering a cell, or ok=false for an empty
// or out-of-bounds cell.
func (b Board) PieceAt(row, col int) (id int, p Piece, ok bool) {
	if row < 0 || row >= NumRows || col < 0 || col >= NumCols {
		return 0, Piece{}, false
	}
	idx := b.grid[row][col]
	if idx == noPiece {
		return 0, Piece{}, false
	}
	return int(idx), b.pieces[idx], true
}

// BigAnchor returns the anchor cell of the 2x2 piece.
func (b Board) BigAnchor() Cell {
	p := b.pieces[b.bigIdx]
	return Cell{p.Row, p.Col}
}

// IsGoal reports whether the 2x2 piece's anchor sits on the goal cell.
func (b Board) IsGoal() bool {
	a := b.BigAnchor()
	return a.Row == GoalRow && a.Col == GoalCol
}

// EmptyCells returns the empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, NumEmpty)
	for r := int8(0); r < NumRows; r++ {
		for c := int8(0); c < NumCols; c++ {
			if b.grid[r][c] == noPiece {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// CanonicalKey returns the 20-byte cell-kind encoding of the position.
// It ignores piece labels and ids, so boards reached by different move
// sequences but structurally identical compare equal. Usable directly
// as a map key.
func (b Board) CanonicalKey() string {
	var sb [NumRows * NumCols]byte
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			idx := b.grid[r][c]
			if idx == noPiece {
				sb[r*NumCols+c] = emptyCode
			} else {
				sb[r*NumCols+c] = kindCode[b.pieces[idx].Kind]
			}
		}
	}
	return string(sb[:])
}

// Hash returns a 64-bit digest of the canonical key, for hash-keyed
// visited sets. The reachable state space is on the order of 10^5
// positions, so collisions in a 64-bit space are not a practical
// concern.
func (b Board) Hash() uint64 {
	return xxhash.Sum64String(b.CanonicalKey())
}

// Equal reports structural equality, label-blind.
func (b Board) Equal(o Board) bool {
	return b.CanonicalKey() == o.CanonicalKey()
}

// CanMove reports whether sliding the given piece one step in the given
// direction is legal, without building the successor.
func (b Board) CanMove(pieceID int, dir move.Direction) bool {
	if pieceID < 0 || pieceID >= NumPieces {
		return false
	}
	p := b.pieces[pieceID]
	dr, dc := dir.Delta()
	er, ec := p.Kind.extents()
	for r := int8(0); r < er; r++ {
		for c := int8(0); c < ec; c++ {
			nr, nc := p.Row+r+int8(dr), p.Col+c+int8(dc)
			if nr < 0 || nr >= NumRows || nc < 0 || nc >= NumCols {
				return false
			}
			occ := b.grid[nr][nc]
			if occ != noPiece && occ != int8(pieceID) {
				return false
			}
		}
	}
	return true
}

// ApplyMove slides one piece one step and returns the resulting Board.
// The receiver is left untouched. Returns ErrIllegalMove if the slide
// would leave the grid or land on an occupied cell.
func (b Board) ApplyMove(m move.Move) (Board, error) {
	if !b.CanMove(int(m.PieceID), m.Dir) {
		return Board{}, fmt.Errorf("%w: piece %d cannot slide %v",
			ErrIllegalMove, m.PieceID, m.Dir)
	}
	nb := b
	p := &nb.pieces[m.PieceID]
	dr, dc := m.Dir.Delta()
	er, ec := p.Kind.extents()
	for r := int8(0); r < er; r++ {
		for c := int8(0); c < ec; c++ {
			nb.grid[p.Row+r][p.Col+c] = noPiece
		}
	}
	p.Row += int8(dr)
	p.Col += int8(dc)
	for r := int8(0); r < er; r++ {
		for c := int8(0); c < ec; c++ {
			nb.grid[p.Row+r][p.Col+c] = int8(m.PieceID)
		}
	}
	return nb, nil
}

// String renders the position in the classical text form: five rows of
// piece labels with '0' for empty cells. Parse round-trips it.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			idx := b.grid[r][c]
			if idx == noPiece {
				sb.WriteByte('0')
			} else {
				sb.WriteByte(b.pieces[idx].Label)
			}
		}
		if r != NumRows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
