/*
NAME
  curve.go

DESCRIPTION
  curve.go implements BSplineCurve: the ordered, monotonically
  non-decreasing control-point list used by grading-tone and
  grading-RGB-curve operators, with optional explicit per-point slopes.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clf

import "fmt"

// ControlPoint is one (x, y) point of a BSplineCurve.
type ControlPoint struct {
	X, Y float64
}

// BSplineCurve is an ordered list of control points, monotonically
// non-decreasing in X, with an optional parallel slice of explicit
// per-point slopes (one per control point, when present).
type BSplineCurve struct {
	Points []ControlPoint
	Slopes []float64 // len(Slopes) == len(Points) or 0 if not specified.
}

// Validate checks the monotonicity invariant and the slope-count
// invariant.
func (c BSplineCurve) Validate() error {
	for i := 1; i < len(c.Points); i++ {
		if c.Points[i].X < c.Points[i-1].X {
			return NewError(StructuralError, "", 0,
				fmt.Sprintf("grading curve control points not monotonic in x at index %d", i))
		}
	}
	if len(c.Slopes) != 0 && len(c.Slopes) != len(c.Points) {
		return NewError(StructuralError, "", 0,
			fmt.Sprintf("grading curve has %d slopes but %d control points", len(c.Slopes), len(c.Points)))
	}
	return nil
}

// HasSlopes reports whether c carries explicit per-point slopes.
func (c BSplineCurve) HasSlopes() bool { return len(c.Slopes) > 0 }

// Clone returns a deep copy of c.
func (c BSplineCurve) Clone() BSplineCurve {
	pts := make([]ControlPoint, len(c.Points))
	copy(pts, c.Points)
	var slopes []float64
	if len(c.Slopes) > 0 {
		slopes = make([]float64, len(c.Slopes))
		copy(slopes, c.Slopes)
	}
	return BSplineCurve{Points: pts, Slopes: slopes}
}
