// Package move defines the slide move vocabulary shared by the board,
// the generator and the search engines.
package move

import "fmt"

// Direction is one of the four orthogonal slide directions. The
// constant order (Up, Down, Left, Right) is also the generation
// priority order, so it must not be reshuffled.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in generation priority order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Delta returns the row and column displacement of a one-step slide.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 1
}

// Opposite returns the direction that undoes this one.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Move slides one piece one cell.
type Move struct {
	PieceID uint8
	Dir     Direction
}

func (m Move) String() string {
	return fmt.Sprintf("piece %d %v", m.PieceID, m.Dir)
}
