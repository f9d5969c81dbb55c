package move

import (
	"testing"

	"github.com/matryer/is"
)

func TestDirectionRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, d := range Directions {
		is.Equal(d.Opposite().Opposite(), d)
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		is.Equal(dr+or, 0)
		is.Equal(dc+oc, 0)
	}
}

func TestMoveString(t *testing.T) {
	is := is.New(t)
	is.Equal(Move{PieceID: 3, Dir: Left}.String(), "piece 3 left")
}
