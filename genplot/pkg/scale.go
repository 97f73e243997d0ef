package genplot

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Axis is the linear transform from one column's observed value range to
// pixel coordinates on a canvas of the given size.
type Axis struct {
	Min float64
	Max float64
	Size float64
}

func NewAxis(vals []float64, size float64) (Axis, error) {
	min, e := stats.Min(vals)
	if e != nil {
		return Axis{}, DataError{fmt.Errorf("scaling axis: %w", e)}
	}
	max, e := stats.Max(vals)
	if e != nil {
		return Axis{}, DataError{fmt.Errorf("scaling axis: %w", e)}
	}
	return Axis{Min: min, Max: max, Size: size}, nil
}

// Pixel maps v onto [0, Size]. A constant column has no range to scale, so
// everything lands on the canvas midpoint; the branch keeps the degenerate
// case away from the division.
func (a Axis) Pixel(v float64) float64 {
	if a.Max == a.Min {
		return a.Size / 2
	}
	return (v - a.Min) / (a.Max - a.Min) * a.Size
}
