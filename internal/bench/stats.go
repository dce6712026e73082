package bench

import "gonum.org/v1/gonum/stat"

// Stats summarizes a series of trial values (cost or wall-clock time)
// across repeated runs of the same algorithm against the same case.
type Stats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

// CalcStats computes the minimum, mean and (sample) standard deviation
// of values using gonum/stat, replacing the teacher's hand-rolled
// accumulator now that costs are float64 rather than int makespans.
func CalcStats(values []float64) Stats {
	s := Stats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	for _, v := range values {
		if v < best {
			best = v
		}
	}
	s.Best = best

	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	if s.N < 2 {
		s.Std = 0
	}
	return s
}
