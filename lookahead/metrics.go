package lookahead

import "github.com/plus3/blockfield/field"

// Metrics describe the surface of a field.
type Metrics struct {
	AggregateHeight int // sum of column heights
	Holes           int // empty cells with an occupied cell somewhere above
	Bumpiness       int // sum of height differences between neighbouring columns
	Cleared         int // rows removed by the placement, zero for Measure
}

// Measure reports the surface metrics of f without changing it.
func Measure(f *field.Field) Metrics {
	view := f.View()
	heights := view.Heights()

	var m Metrics
	for col, h := range heights {
		m.AggregateHeight += h
		if col > 0 {
			m.Bumpiness += abs(h - heights[col-1])
		}

		for row := view.Rows() - h; row < view.Rows(); row++ {
			if view.At(row, col) == 0 {
				m.Holes++
			}
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
