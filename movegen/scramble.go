package movegen

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/huarongdao/board"
)

// Scramble walks `steps` random legal moves from b and returns the
// resulting position. It never slides the piece just moved straight
// back, so the walk makes progress instead of oscillating. A nonzero
// seed makes the walk reproducible. Useful for demos and for building
// positions a known number of moves from a target.
func Scramble(b board.Board, steps int, seed uint64) (board.Board, error) {
	if err := b.Validate(); err != nil {
		return board.Board{}, err
	}
	rng := frand.New()
	if seed != 0 {
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:], seed)
		rng = frand.NewCustom(key[:], 1024, 12)
	}
	gen := NewGenerator()
	cur := b
	lastPiece, lastDir := -1, -1
	for i := 0; i < steps; i++ {
		plays := gen.GenAll(cur)
		candidates := plays[:0:0]
		for _, p := range plays {
			if int(p.Move.PieceID) == lastPiece &&
				int(p.Move.Dir) == lastDir {
				continue
			}
			candidates = append(candidates, p)
		}
		if len(candidates) == 0 {
			return board.Board{}, fmt.Errorf(
				"scramble stuck after %d steps: no non-reversing move", i)
		}
		pick := candidates[rng.Intn(len(candidates))]
		cur = pick.Board
		lastPiece = int(pick.Move.PieceID)
		lastDir = int(pick.Move.Dir.Opposite())
	}
	return cur, nil
}
