package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/distgrid/grid"
)

// Summary describes a distance grid.
type Summary struct {
	Cells       int      // total cells
	Targets     int      // cells at distance 0
	Unreachable int      // cells at Infinity
	Max         Distance // largest finite distance; Infinity if none is finite
	Mean        float64  // mean of finite distances; 0 if none
	StdDev      float64  // population standard deviation of finite distances
}

// Summarize computes Summary over g. A nil grid yields the zero Summary.
// Complexity: O(R×C).
func Summarize(g *grid.Grid[Distance]) Summary {
	if g == nil {
		return Summary{}
	}
	s := Summary{Cells: g.Size(), Max: Infinity}
	finite := make([]float64, 0, g.Size())
	for _, d := range g.Values() {
		switch {
		case d.IsInf():
			s.Unreachable++
			continue
		case d == 0:
			s.Targets++
		}
		finite = append(finite, float64(d))
	}
	if len(finite) == 0 {
		return s
	}

	s.Max = Distance(floats.Max(finite))
	s.Mean = stat.Mean(finite, nil)
	s.StdDev = stat.PopStdDev(finite, nil)

	return s
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d targets=%d unreachable=%d max=%v mean=%.2f stddev=%.2f",
		s.Cells, s.Targets, s.Unreachable, s.Max, s.Mean, s.StdDev)
}
