/*
NAME
  lut3d.go

DESCRIPTION
  lut3d.go implements the Lut3D operator (also reached via the
  <InvLut3D> element tag, distinguished only by Direction): an LxLxLx3
  cube of samples in blue-fastest order.

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

// Interpolation3D selects the sampling method between Lut3D grid
// points.
type Interpolation3D int

const (
	Interp3DDefault Interpolation3D = iota
	Interp3DLinear
	Interp3DTetrahedral
)

// String formats an Interpolation3D using its CLF/CTF attribute
// spelling.
func (i Interpolation3D) String() string {
	switch i {
	case Interp3DLinear:
		return "linear"
	case Interp3DTetrahedral:
		return "tetrahedral"
	default:
		return "default"
	}
}

// Lut3D is the Lut3D / InvLut3D operator. Array holds L*L*L entries of
// 3 channels each, indexed blue-fastest: index(r,g,b) =
// (r*L+g)*L+b, each entry occupying 3 consecutive float64s.
type Lut3D struct {
	OpBase
	Array         Array
	Interpolation Interpolation3D

	// FastForward holds a uniformly sampled forward cube approximating
	// an inverse Lut3D, built by sampling the inverse on a uniform grid
	// using the inverse's own interpolation mode.
	FastForward *Lut3D
}

func (l *Lut3D) Type() OpType { return OpLut3D }

// Size returns the per-axis grid resolution L.
func (l *Lut3D) Size() int {
	if len(l.Array.Dims) == 0 {
		return 0
	}
	return l.Array.Dims[0]
}

// NormalizeLut3DDims accepts both the modern [L, L, L, 3] array shape and
// the historical [L, L, 3] shape (outer dim implicitly repeated three
// times), returning the canonical [L, L, L, 3] form.
func NormalizeLut3DDims(dims []int) ([]int, error) {
	switch len(dims) {
	case 4:
		if dims[0] != dims[1] || dims[1] != dims[2] || dims[3] != 3 {
			return nil, NewError(ArrayLength, "", 0, "Lut3D array dims must be L x L x L x 3")
		}
		return dims, nil
	case 3:
		if dims[2] != 3 {
			return nil, NewError(ArrayLength, "", 0, "Lut3D array dims must be L x L x 3 (legacy shape)")
		}
		L := dims[0]
		return []int{L, L, L, 3}, nil
	default:
		return nil, NewError(ArrayLength, "", 0,
			fmt.Sprintf("Lut3D array must have 3 or 4 dims, got %d", len(dims)))
	}
}

// Validate checks array shape.
func (l *Lut3D) Validate() error {
	if len(l.Array.Dims) != 4 || l.Array.Dims[3] != 3 {
		return NewError(ArrayLength, "", 0, "Lut3D array must be L x L x L x 3")
	}
	L := l.Array.Dims[0]
	if l.Array.Dims[1] != L || l.Array.Dims[2] != L {
		return NewError(ArrayLength, "", 0, "Lut3D array must be cubic")
	}
	if L < 2 {
		return NewError(InvalidCubeSize, "", 0, "Lut3D cube size must be at least 2")
	}
	return nil
}

// Normalize rescales stored values into the 32f domain. Mirrors Lut1D:
// a Forward LUT's outputs are divided by OutBitDepth's scale; an
// Inverse LUT's are divided by InBitDepth's scale.
func (l *Lut3D) Normalize(inScale, outScale float64) {
	if l.Direction == Inverse {
		l.Array = l.Array.Scale(1.0 / inScale)
	} else {
		l.Array = l.Array.Scale(1.0 / outScale)
	}
}

func (l *Lut3D) Clone() Operator {
	out := &Lut3D{OpBase: l.OpBase.cloneBase(), Array: l.Array.Clone(), Interpolation: l.Interpolation}
	if l.FastForward != nil {
		out.FastForward = l.FastForward.Clone().(*Lut3D)
	}
	return out
}

// index returns the flat value-slice offset for the cube entry (r,g,b).
func (l *Lut3D) index(r, g, b int) int {
	L := l.Size()
	return ((r*L+g)*L + b) * 3
}

// Sample evaluates the cube at normalized coordinates (r,g,b) in
// [0,1]^3 using trilinear interpolation; Interp3DTetrahedral falls
// back to trilinear (no shader target in this package).
func (l *Lut3D) Sample(r, g, b float64) [3]float64 {
	L := l.Size()
	if L == 0 {
		return [3]float64{r, g, b}
	}
	rf, gf, bf := r*float64(L-1), g*float64(L-1), b*float64(L-1)
	r0, g0, b0 := clampInt(int(rf), 0, L-1), clampInt(int(gf), 0, L-1), clampInt(int(bf), 0, L-1)
	r1, g1, b1 := clampInt(r0+1, 0, L-1), clampInt(g0+1, 0, L-1), clampInt(b0+1, 0, L-1)
	dr, dg, db := rf-float64(r0), gf-float64(g0), bf-float64(b0)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	var out [3]float64
	for c := 0; c < 3; c++ {
		c000 := l.Array.Values[l.index(r0, g0, b0)+c]
		c001 := l.Array.Values[l.index(r0, g0, b1)+c]
		c010 := l.Array.Values[l.index(r0, g1, b0)+c]
		c011 := l.Array.Values[l.index(r0, g1, b1)+c]
		c100 := l.Array.Values[l.index(r1, g0, b0)+c]
		c101 := l.Array.Values[l.index(r1, g0, b1)+c]
		c110 := l.Array.Values[l.index(r1, g1, b0)+c]
		c111 := l.Array.Values[l.index(r1, g1, b1)+c]

		c00 := lerp(c000, c100, dr)
		c01 := lerp(c001, c101, dr)
		c10 := lerp(c010, c110, dr)
		c11 := lerp(c011, c111, dr)
		c0 := lerp(c00, c10, dg)
		c1 := lerp(c01, c11, dg)
		out[c] = lerp(c0, c1, db)
	}
	return out
}
