package cooling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/cooling"
)

func TestExponentialSchedule(t *testing.T) {
	sched, err := cooling.NewExponential[int](0.9)
	require.NoError(t, err)
	require.InDelta(t, 90.0, sched.Next(100, 0), 1e-9)
}

func TestExponentialRejectsInvalidAlpha(t *testing.T) {
	_, err := cooling.NewExponential[int](0)
	require.Error(t, err)
	_, err = cooling.NewExponential[int](1)
	require.Error(t, err)
}

func TestLinearScheduleFloorsAtZero(t *testing.T) {
	sched, err := cooling.NewLinear[int](30)
	require.NoError(t, err)
	require.InDelta(t, 0.0, sched.Next(10, 0), 1e-9)
	require.InDelta(t, 20.0, sched.Next(50, 0), 1e-9)
}

func TestLinearRejectsInvalidDelta(t *testing.T) {
	_, err := cooling.NewLinear[int](0)
	require.Error(t, err)
	_, err = cooling.NewLinear[int](-1)
	require.Error(t, err)
}
