package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/recorder"
)

type fakeSolution struct {
	cost float64
}

func (f *fakeSolution) Cost() float64 { return f.cost }
func (f *fakeSolution) CopyFrom(src *fakeSolution) { f.cost = src.cost }
func (f *fakeSolution) Clone() *fakeSolution { return &fakeSolution{cost: f.cost} }

func TestRecorderAcceptsOnlyImprovements(t *testing.T) {
	working := &fakeSolution{cost: 100}
	r := recorder.New[*fakeSolution](working)
	require.Equal(t, 100.0, r.BestCost())

	require.False(t, r.Accept(&fakeSolution{cost: 100}))
	require.False(t, r.Accept(&fakeSolution{cost: 150}))
	require.True(t, r.Accept(&fakeSolution{cost: 90}))
	require.Equal(t, 90.0, r.BestCost())
}

func TestRecorderBestIsIndependentCopy(t *testing.T) {
	working := &fakeSolution{cost: 50}
	r := recorder.New[*fakeSolution](working)

	working.cost = 10
	r.Accept(working)
	best := r.Best()

	working.cost = 999
	require.Equal(t, 10.0, best.Cost())
}
