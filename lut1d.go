/*
NAME
  lut1d.go

DESCRIPTION
  lut1d.go implements the Lut1D operator (also reached via the
  <InvLut1D> element tag, distinguished only by Direction): a 1D lookup
  table with interpolation mode, half-domain and raw-half-float
  encodings, and an optional hue-preserving adjustment.

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

// Interpolation1D selects the sampling method between Lut1D entries.
type Interpolation1D int

const (
	Interp1DDefault Interpolation1D = iota
	Interp1DLinear
	Interp1DNearest
	Interp1DCubic
)

// HueAdjust selects the hue-preserving post-process applied after
// sampling a 1D LUT.
type HueAdjust int

const (
	HueAdjustNone HueAdjust = iota
	HueAdjustDW3
)

// String formats an Interpolation1D using its CLF/CTF attribute
// spelling.
func (i Interpolation1D) String() string {
	switch i {
	case Interp1DLinear:
		return "linear"
	case Interp1DNearest:
		return "nearest"
	case Interp1DCubic:
		return "cubic"
	default:
		return "default"
	}
}

// String formats a HueAdjust using its CLF/CTF attribute spelling.
func (h HueAdjust) String() string {
	if h == HueAdjustDW3 {
		return "dw3"
	}
	return "none"
}

// Lut1D is the Lut1D / InvLut1D operator. Array holds L entries per
// channel (R, G, B); single-channel shorthand arrays must already have
// been expanded via Array.ReplicateChannel by the time Validate runs.
type Lut1D struct {
	OpBase
	Array         Array
	Interpolation Interpolation1D
	HalfDomain    bool
	RawHalfs      bool
	Hue           HueAdjust

	// FileOutputBitDepth is the bit depth recorded for use as an
	// inversion-size heuristic: for a Forward Lut1D this is OutBitDepth;
	// for an Inverse Lut1D (<InvLut1D>) it is InBitDepth, because the
	// roles swap under inversion.
	FileOutputBitDepth BitDepth

	// FastForward holds a forward approximation of an inverse LUT that
	// fails the invertible-exact monotonicity test, sampled uniformly or,
	// for a half-domain LUT, at every half-float bit pattern.
	// Populated by package invert; nil for exact or forward LUTs.
	FastForward *Lut1D

	// Exact records whether an Inverse Lut1D was classified
	// invertible-exact (monotonic) rather than requiring FastForward.
	// Meaningless for Forward LUTs.
	Exact bool
}

func (l *Lut1D) Type() OpType { return OpLut1D }

// Channels returns the number of channels in the LUT's array (1, prior
// to replication, or 3).
func (l *Lut1D) Channels() int {
	if len(l.Array.Dims) != 2 {
		return 0
	}
	return l.Array.Dims[1]
}

// Length returns the number of samples per channel.
func (l *Lut1D) Length() int {
	if len(l.Array.Dims) == 0 {
		return 0
	}
	return l.Array.Dims[0]
}

// Validate checks array shape and the half-domain length invariant
// (half-domain LUTs always have exactly 65536 entries, one per 16-bit
// half-float bit pattern).
func (l *Lut1D) Validate() error {
	if len(l.Array.Dims) != 2 || l.Array.Dims[1] != 3 {
		return NewError(ArrayLength, "", 0, "Lut1D array must be L x 3 after channel replication")
	}
	if l.Length() == 0 {
		return NewError(ArrayLength, "", 0, "Lut1D array must not be empty")
	}
	if l.HalfDomain && l.Length() != 65536 {
		return NewError(ArrayLength, "", 0,
			fmt.Sprintf("half-domain Lut1D must have 65536 entries, has %d", l.Length()))
	}
	return nil
}

// Normalize rescales the LUT's stored values into the 32f domain. A
// Forward LUT's output values are divided by OutBitDepth's scale; an
// Inverse LUT's are divided by InBitDepth's scale, because an inverse
// LUT's roles are swapped.
func (l *Lut1D) Normalize(inScale, outScale float64) {
	if l.Direction == Inverse {
		l.Array = l.Array.Scale(1.0 / inScale)
	} else {
		l.Array = l.Array.Scale(1.0 / outScale)
	}
}

func (l *Lut1D) Clone() Operator {
	out := &Lut1D{
		OpBase: l.OpBase.cloneBase(), Array: l.Array.Clone(),
		Interpolation: l.Interpolation, HalfDomain: l.HalfDomain,
		RawHalfs: l.RawHalfs, Hue: l.Hue,
		FileOutputBitDepth: l.FileOutputBitDepth, Exact: l.Exact,
	}
	if l.FastForward != nil {
		out.FastForward = l.FastForward.Clone().(*Lut1D)
	}
	return out
}

// Sample evaluates the LUT at normalized input x (0..1 for non-half-
// domain LUTs) for the given channel using the configured
// interpolation mode. HalfDomain/RawHalfs reinterpretation is assumed
// to have already happened at read time; Sample only interpolates.
func (l *Lut1D) Sample(channel int, x float64) float64 {
	n := l.Length()
	if n == 0 {
		return x
	}
	pos := x * float64(n-1)
	switch l.Interpolation {
	case Interp1DNearest:
		idx := int(pos + 0.5)
		idx = clampInt(idx, 0, n-1)
		return l.Array.Values[idx*3+channel]
	default: // Default and Linear both linearly interpolate; Cubic falls back to linear (no shader target here).
		lo := clampInt(int(pos), 0, n-1)
		hi := clampInt(lo+1, 0, n-1)
		frac := pos - float64(lo)
		a := l.Array.Values[lo*3+channel]
		b := l.Array.Values[hi*3+channel]
		return a + (b-a)*frac
	}
}

// SampleHalfDomain evaluates a half-domain LUT at input x by converting
// x to its 16-bit half-float bit pattern and indexing directly: a
// half-domain LUT is defined at every representable half-float value,
// so no interpolation between entries is needed.
func (l *Lut1D) SampleHalfDomain(channel int, x float32) float64 {
	idx := int(Float32ToHalf(x))
	if idx < 0 || idx >= l.Length() {
		return float64(x)
	}
	return l.Array.Values[idx*3+channel]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
