package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/tour"
)

func trianglePath() []graph.Edge {
	return []graph.Edge{
		{Src: 0, Dst: 1, Day: 0, Price: 1},
		{Src: 1, Dst: 2, Day: 1, Price: 1},
		{Src: 2, Dst: 0, Day: 2, Price: 1},
	}
}

func TestTour_Cost(t *testing.T) {
	tr := tour.New(trianglePath())
	require.Equal(t, 3, tr.Cost())
}

func TestTour_ValidateOK(t *testing.T) {
	tr := tour.New(trianglePath())
	require.NoError(t, tr.Validate(3, 0))
}

func TestTour_ValidateWrongLength(t *testing.T) {
	tr := tour.New(trianglePath()[:2])
	require.ErrorIs(t, tr.Validate(3, 0), tour.ErrWrongLength)
}

func TestTour_ValidateDayMismatch(t *testing.T) {
	p := trianglePath()
	p[1].Day = 0
	tr := tour.New(p)
	require.ErrorIs(t, tr.Validate(3, 0), tour.ErrDayMismatch)
}

func TestTour_ValidateBrokenChain(t *testing.T) {
	p := trianglePath()
	p[1].Src = 0 // breaks p[0].Dst(1) == p[1].Src
	tr := tour.New(p)
	require.ErrorIs(t, tr.Validate(3, 0), tour.ErrBrokenChain)
}

func TestTour_ValidateNotClosed(t *testing.T) {
	p := trianglePath()
	p[2].Dst = 1 // ends at 1, not start 0
	tr := tour.New(p)
	require.ErrorIs(t, tr.Validate(3, 0), tour.ErrNotClosed)
}

func TestTour_ValidateRevisit(t *testing.T) {
	p := []graph.Edge{
		{Src: 0, Dst: 1, Day: 0, Price: 1},
		{Src: 1, Dst: 0, Day: 1, Price: 1},
		{Src: 0, Dst: 0, Day: 2, Price: 1},
	}
	tr := tour.New(p)
	require.ErrorIs(t, tr.Validate(3, 0), tour.ErrNotHamiltonian)
}

func TestTour_Snapshot(t *testing.T) {
	tr := tour.New(trianglePath())
	snap := tr.Snapshot()
	snap.Path[0].Price = 999
	require.Equal(t, 1, tr.Path[0].Price, "snapshot must not alias the original backing array")
}

func TestTour_DebugString(t *testing.T) {
	tr := tour.New(trianglePath())
	require.Equal(t, "0->1@0($1) 1->2@1($1) 2->0@2($1)", tr.DebugString())
}
