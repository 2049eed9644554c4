/*
NAME
  invert.go

DESCRIPTION
  invert.go implements LUT inversion preparation: classifying an
  inverse Lut1D as invertible-exact or requires-approximation via
  monotonicity analysis, building the fast-forward LUT when needed, and
  the inverse-3D-LUT sampling path. Matrix's closed-form inversion lives
  alongside in matrix.go; Range's is clf.Range.Invert.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package invert implements the LUT-inversion finalization step:
// fast-forward LUT construction for inverse 1D/3D LUTs that fail
// monotonicity, and the closed-form Matrix inversion.
package invert

import (
	"github.com/ausocean/clf"
	"gonum.org/v1/gonum/floats"
)

// monotonicityThreshold bounds the allowed decrease between consecutive
// samples before a channel is classified non-monotonic; exact equality
// is always tolerated (flat regions are common at LUT extremes).
const monotonicityThreshold = 0.0

// forwardLUTSize returns the number of samples used for l's
// fast-forward LUT: a fixed 65536 for half-domain LUTs, otherwise the
// file's recorded output bit depth scale plus one, per spec.md §9 (the
// source's own inversion-size heuristic).
func forwardLUTSize(l *clf.Lut1D) int {
	if l.HalfDomain {
		return clf.HalfDomainSize
	}
	return int(l.FileOutputBitDepth.Scale()) + 1
}

// Lut1D finalizes an inverse Lut1D: it classifies each
// channel's monotonicity and, if any channel fails, builds a
// half-domain or uniformly sampled fast-forward LUT approximating the
// forward transform.
func Lut1D(l *clf.Lut1D) error {
	if l.Direction != clf.Inverse {
		return nil
	}
	n := l.Length()
	if n == 0 {
		return clf.NewError(clf.ArrayLength, "", 0, "cannot invert an empty Lut1D")
	}

	exact := true
	for ch := 0; ch < 3; ch++ {
		if !channelMonotonic(l, ch) {
			exact = false
			break
		}
	}
	l.Exact = exact
	if exact {
		return nil
	}

	if clf.Log != nil {
		clf.Log.Warning("inverse Lut1D is not monotonic, building fast-forward approximation", "id", l.ID)
	}

	halfDomain := l.HalfDomain
	size := forwardLUTSize(l)

	fwd := &clf.Lut1D{
		OpBase:        l.OpBase.cloneBase(),
		Interpolation: l.Interpolation,
		HalfDomain:    halfDomain,
		Hue:           l.Hue,
	}
	fwd.Direction = clf.Forward
	fwd.InBitDepth, fwd.OutBitDepth = l.OutBitDepth, l.InBitDepth
	fwd.FileOutputBitDepth = fwd.OutBitDepth

	values := make([]float64, size*3)
	for i := 0; i < size; i++ {
		var x float64
		if halfDomain {
			x = float64(clf.HalfToFloat32(uint16(clampHalfDomainIndex(i))))
		} else {
			x = float64(i) / float64(size-1)
		}
		for ch := 0; ch < 3; ch++ {
			values[i*3+ch] = invertSample(l, ch, x)
		}
	}
	fwd.Array = clf.Array{Dims: []int{size, 3}, Values: values}

	l.FastForward = fwd
	return nil
}

// channelMonotonic reports whether channel ch's samples are
// monotonically non-decreasing, the invertible-exact criterion.
func channelMonotonic(l *clf.Lut1D, ch int) bool {
	n := l.Length()
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = l.Array.Values[i*3+ch]
	}
	diffs := make([]float64, n-1)
	floats.SubTo(diffs, samples[1:], samples[:n-1])
	for _, d := range diffs {
		if d < monotonicityThreshold {
			return false
		}
	}
	return true
}

// invertSample evaluates the *inverse* relationship of l at input x by
// searching for the bracketing pair of samples and interpolating in
// the input domain; used to build the fast-forward approximation for
// a non-monotonic LUT, where l's own array maps output->input.
func invertSample(l *clf.Lut1D, ch int, x float64) float64 {
	n := l.Length()
	// l.Array stores, for each index i, the pre-inversion value at
	// position i/n-1; find the first bracketing pair (a monotonic scan
	// is "best effort" for a non-monotonic curve, matching the
	// nearest-match behaviour a sampled approximation accepts).
	lo, hi := 0, n-1
	for i := 0; i < n-1; i++ {
		a := l.Array.Values[i*3+ch]
		b := l.Array.Values[(i+1)*3+ch]
		if (a <= x && x <= b) || (b <= x && x <= a) {
			lo, hi = i, i+1
			break
		}
	}
	a := l.Array.Values[lo*3+ch]
	b := l.Array.Values[hi*3+ch]
	if a == b {
		return float64(lo) / float64(n-1)
	}
	frac := (x - a) / (b - a)
	return (float64(lo) + frac*float64(hi-lo)) / float64(n-1)
}

// Lut3D finalizes an inverse Lut3D: the inverse 3D path always
// constructs a fast-forward 3D LUT sampling the inverse on
// a uniform grid, regardless of monotonicity (a 3D inverse has no
// closed-form invertibility test).
func Lut3D(l *clf.Lut3D, size int) error {
	if l.Direction != clf.Inverse {
		return nil
	}
	if size < 2 {
		return clf.NewError(clf.InvalidCubeSize, "", 0, "fast-forward Lut3D size must be >= 2")
	}

	fwd := &clf.Lut3D{
		OpBase:        l.OpBase.cloneBase(),
		Interpolation: l.Interpolation,
	}
	fwd.Direction = clf.Forward
	fwd.InBitDepth, fwd.OutBitDepth = l.OutBitDepth, l.InBitDepth

	values := make([]float64, 0, size*size*size*3)
	for ri := 0; ri < size; ri++ {
		r := float64(ri) / float64(size-1)
		for gi := 0; gi < size; gi++ {
			g := float64(gi) / float64(size-1)
			for bi := 0; bi < size; bi++ {
				b := float64(bi) / float64(size-1)
				out := l.Sample(r, g, b)
				values = append(values, out[0], out[1], out[2])
			}
		}
	}
	fwd.Array = clf.Array{Dims: []int{size, size, size, 3}, Values: values}
	l.FastForward = fwd
	return nil
}
