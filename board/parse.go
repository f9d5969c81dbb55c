package board

import (
	"fmt"
	"strings"
)

// Parse reads the classical five-line text form, e.g. the 81-move
// starting position:
//
//	2113
//	2113
//	4665
//	4775
//	7007
//
// '0' marks an empty cell. '7' always marks a 1x1 piece, even when two
// of them touch. '6' cells are 1x2 pieces paired greedily in row-major
// order, preferring the right neighbor and falling back to the cell
// below. Any other label must cover exactly the footprint of a single
// piece (1x1, 1x2, 2x1 or 2x2). Labels are otherwise free; the board's
// canonical form never depends on them.
func Parse(text string) (Board, error) {
	lines := strings.Fields(strings.TrimSpace(text))
	if len(lines) != NumRows {
		return Board{}, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoard,
			len(lines), NumRows)
	}
	var grid [NumRows][NumCols]byte
	for r, line := range lines {
		if len(line) != NumCols {
			return Board{}, fmt.Errorf("%w: row %d is %q, want %d cells",
				ErrInvalidBoard, r, line, NumCols)
		}
		copy(grid[r][:], line)
	}

	var pieces []Piece
	var claimed [NumRows][NumCols]bool
	for r := int8(0); r < NumRows; r++ {
		for c := int8(0); c < NumCols; c++ {
			label := grid[r][c]
			if label == '0' || claimed[r][c] {
				continue
			}
			var p Piece
			var err error
			switch label {
			case '7':
				p = Piece{Kind: Single, Row: r, Col: c, Label: label}
				claimed[r][c] = true
			case '6':
				p, err = claimDomino(&grid, &claimed, r, c)
			default:
				p, err = claimFootprint(&grid, &claimed, r, c)
			}
			if err != nil {
				return Board{}, err
			}
			pieces = append(pieces, p)
		}
	}
	return NewBoard(pieces)
}

// MustParse is Parse for known-good literals; it panics on error. Only
// for tests and built-in positions.
func MustParse(text string) Board {
	b, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return b
}

func claimDomino(grid *[NumRows][NumCols]byte, claimed *[NumRows][NumCols]bool,
	r, c int8) (Piece, error) {
	label := grid[r][c]
	if c+1 < NumCols && grid[r][c+1] == label && !claimed[r][c+1] {
		claimed[r][c], claimed[r][c+1] = true, true
		return Piece{Kind: Horizontal, Row: r, Col: c, Label: label}, nil
	}
	if r+1 < NumRows && grid[r+1][c] == label && !claimed[r+1][c] {
		claimed[r][c], claimed[r+1][c] = true, true
		return Piece{Kind: Vertical, Row: r, Col: c, Label: label}, nil
	}
	return Piece{}, fmt.Errorf("%w: unpaired domino cell %q at %d,%d",
		ErrInvalidBoard, label, r, c)
}

// claimFootprint collects every cell carrying the same label and
// requires the set to be exactly one rectangular piece footprint.
func claimFootprint(grid *[NumRows][NumCols]byte, claimed *[NumRows][NumCols]bool,
	r, c int8) (Piece, error) {
	label := grid[r][c]
	minR, maxR, minC, maxC := r, r, c, c
	count := 0
	for rr := int8(0); rr < NumRows; rr++ {
		for cc := int8(0); cc < NumCols; cc++ {
			if grid[rr][cc] != label {
				continue
			}
			claimed[rr][cc] = true
			count++
			minR, maxR = min(minR, rr), max(maxR, rr)
			minC, maxC = min(minC, cc), max(maxC, cc)
		}
	}
	h, w := maxR-minR+1, maxC-minC+1
	if int(h)*int(w) != count || h > 2 || w > 2 {
		return Piece{}, fmt.Errorf("%w: label %q cells do not form one piece",
			ErrInvalidBoard, label)
	}
	var kind PieceKind
	switch {
	case h == 2 && w == 2:
		kind = Big
	case h == 2:
		kind = Vertical
	case w == 2:
		kind = Horizontal
	default:
		kind = Single
	}
	return Piece{Kind: kind, Row: minR, Col: minC, Label: label}, nil
}
