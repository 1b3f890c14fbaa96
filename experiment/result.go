package experiment

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result aggregates the diameters measured for one tree size.
type Result struct {
	Size   int
	Trials int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Aggregate summarises the diameters drawn for size. StdDev is the unbiased
// sample deviation, or 0 with fewer than two samples. An empty input yields
// a Result with only Size set.
func Aggregate(size int, diameters []float64) Result {
	res := Result{Size: size, Trials: len(diameters)}
	if len(diameters) == 0 {
		return res
	}
	res.Mean, res.StdDev = stat.MeanStdDev(diameters, nil)
	if len(diameters) < 2 || math.IsNaN(res.StdDev) {
		res.StdDev = 0
	}
	res.Min = int(floats.Min(diameters))
	res.Max = int(floats.Max(diameters))

	return res
}
