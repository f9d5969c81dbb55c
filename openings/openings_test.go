package openings

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/heuristic"
)

func TestCatalogEntriesAreValid(t *testing.T) {
	is := is.New(t)
	names, err := Names()
	is.NoErr(err)
	is.True(len(names) >= 4)
	for _, name := range names {
		o, err := Get(name)
		is.NoErr(err)
		b, err := o.Board()
		is.NoErr(err)
		is.NoErr(b.Validate())
	}
}

func TestClassic(t *testing.T) {
	is := is.New(t)
	o, err := Get("classic")
	is.NoErr(err)
	b, err := o.Board()
	is.NoErr(err)
	is.Equal(b.BigAnchor(), board.Cell{Row: 0, Col: 1})
	is.True(!b.IsGoal())
}

func TestFixtures(t *testing.T) {
	is := is.New(t)

	o, err := Get("one-step")
	is.NoErr(err)
	b, err := o.Board()
	is.NoErr(err)
	is.Equal(heuristic.Estimate(b), 1)

	o, err = Get("solved")
	is.NoErr(err)
	b, err = o.Board()
	is.NoErr(err)
	is.True(b.IsGoal())
}

func TestGetUnknown(t *testing.T) {
	is := is.New(t)
	_, err := Get("no-such-opening")
	is.True(err != nil)
}
