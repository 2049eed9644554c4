/*
NAME
  bake.go

DESCRIPTION
  bake.go reduces an arbitrary per-pixel evaluator (composed from a
  ProcessList's operators via an injected EvaluatorFor) into an
  approximating ProcessList built from at most one 1D LUT and one 3D
  LUT: 1D alone when the pipeline has no channel crosstalk, 3D alone
  when it does and no shaper space was requested, or 1D+3D when a
  shaper space is requested ahead of a crosstalk-bearing 3D cube.
  Crosstalk is detected by estimating the composed evaluator's
  numerical Jacobian, held in a gonum mat.Dense, at a small fixed set
  of sample points.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bake approximates an arbitrary color pipeline with a baked
// 1D, 3D, or 1D+3D LUT ProcessList.
package bake

import (
	"github.com/ausocean/clf"
	"github.com/ausocean/clf/version"
	"gonum.org/v1/gonum/mat"
)

// DefaultCubeSize is used when Options.CubeSize is zero.
const DefaultCubeSize = 33

// jacobianEps is the finite-difference step used to estimate the
// composed evaluator's local Jacobian when checking for crosstalk.
const jacobianEps = 1e-3

// crosstalkThreshold is the minimum off-diagonal Jacobian magnitude,
// relative to the largest diagonal entry at that sample, that counts
// as crosstalk; pipelines built purely from per-channel curves and
// matrices with only diagonal terms fall well under this.
const crosstalkThreshold = 1e-4

// Shape identifies which of the three approximating forms Bake chose.
type Shape int

const (
	Shape1D Shape = iota
	Shape3D
	Shape1D3D
)

func (s Shape) String() string {
	switch s {
	case Shape1D:
		return "1D"
	case Shape3D:
		return "3D"
	case Shape1D3D:
		return "1D+3D"
	default:
		return "unknown"
	}
}

// Options configures one Bake call.
type Options struct {
	// ID and Name are attached to the baked ProcessList.
	ID, Name string

	// CubeSize is the per-axis resolution of the 3D LUT, used whenever
	// the pipeline has crosstalk. Defaults to DefaultCubeSize. Sizes
	// below 2 fail InvalidCubeSize.
	CubeSize int

	// Shaper requests a 1D shaper LUT ahead of the 3D cube when the
	// pipeline has crosstalk, producing a 1D+3D bake instead of a bare
	// 3D one.
	Shaper bool

	// ShaperSize is the entry count of the baked 1D LUT: the shaper of a
	// 1D+3D bake, or the whole LUT of a crosstalk-free 1D bake. Zero
	// selects a half-domain (clf.HalfDomainSize-entry) LUT.
	ShaperSize int

	// ShaperRange, when non-nil, encodes [Start, End] -> [0, 1] ahead of
	// the shaper LUT via a leading Range operator; nil means the
	// identity interval [0, 1] (no Range emitted).
	ShaperRange *[2]float64
}

// Result reports what Bake produced.
type Result struct {
	ProcessList *clf.ProcessList
	Shape       Shape
}

// Bake composes pl's operators via eval into a single evaluation
// kernel and approximates that kernel with a baked ProcessList per
// opts.
func Bake(pl *clf.ProcessList, eval clf.EvaluatorFor, opts Options) (*Result, error) {
	cubeSize := opts.CubeSize
	if cubeSize == 0 {
		cubeSize = DefaultCubeSize
	}
	if cubeSize < 2 {
		return nil, clf.NewError(clf.InvalidCubeSize, "", 0, "bake cube size must be at least 2")
	}

	fn, err := compose(pl, eval)
	if err != nil {
		return nil, err
	}

	crosstalk := detectCrosstalk(fn)

	out := &clf.ProcessList{
		ID:         opts.ID,
		Name:       opts.Name,
		CTFVersion: version.MaxCTF,
	}

	switch {
	case !crosstalk:
		out.Ops = append(out.Ops, build1D(fn, shaperSize(opts)))
		sealOutput(out)
		return &Result{ProcessList: out, Shape: Shape1D}, nil

	case !opts.Shaper:
		cube, err := build3D(fn, cubeSize)
		if err != nil {
			return nil, err
		}
		out.Ops = append(out.Ops, cube)
		sealOutput(out)
		return &Result{ProcessList: out, Shape: Shape3D}, nil

	default:
		size := shaperSize(opts)
		rng, fromShaperSpace := shaperMapping(opts)
		if rng != nil {
			out.Ops = append(out.Ops, rng)
		}
		out.Ops = append(out.Ops, identityLut1D(size))
		cube, err := build3D(composeShaperThenFn(fromShaperSpace, fn), cubeSize)
		if err != nil {
			return nil, err
		}
		out.Ops = append(out.Ops, cube)
		sealOutput(out)
		return &Result{ProcessList: out, Shape: Shape1D3D}, nil
	}
}

func sealOutput(pl *clf.ProcessList) {
	for i := range pl.Ops {
		b := pl.Ops[i].Base()
		if b.InBitDepth == clf.UnknownBitDepth {
			b.InBitDepth = clf.F32
		}
		if b.OutBitDepth == clf.UnknownBitDepth {
			b.OutBitDepth = clf.F32
		}
	}
	pl.Seal()
}

// compose chains pl's operators into a single pixel evaluation kernel
// using eval to obtain each operator's own kernel, applied in document
// order.
func compose(pl *clf.ProcessList, eval clf.EvaluatorFor) (clf.EvalFunc, error) {
	kernels := make([]clf.EvalFunc, 0, len(pl.Ops))
	for _, op := range pl.Ops {
		k, err := eval(op)
		if err != nil {
			return nil, err
		}
		kernels = append(kernels, k)
	}
	return func(p clf.Pixel) clf.Pixel {
		for _, k := range kernels {
			p = k(p)
		}
		return p
	}, nil
}

// detectCrosstalk estimates fn's Jacobian at a small fixed grid of
// sample points and reports whether any off-diagonal term is
// significant relative to that sample's largest diagonal term.
func detectCrosstalk(fn clf.EvalFunc) bool {
	samples := [][3]float64{
		{0.1, 0.1, 0.1}, {0.9, 0.1, 0.1}, {0.1, 0.9, 0.1},
		{0.1, 0.1, 0.9}, {0.5, 0.5, 0.5}, {0.25, 0.75, 0.4},
	}
	for _, s := range samples {
		j := jacobianAt(fn, s)
		diag := 0.0
		for i := 0; i < 3; i++ {
			if v := absAt(j, i, i); v > diag {
				diag = v
			}
		}
		if diag == 0 {
			diag = 1
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if r == c {
					continue
				}
				if absAt(j, r, c)/diag > crosstalkThreshold {
					return true
				}
			}
		}
	}
	return false
}

func absAt(m *mat.Dense, r, c int) float64 {
	v := m.At(r, c)
	if v < 0 {
		return -v
	}
	return v
}

// jacobianAt estimates the 3x3 Jacobian of fn at x via central
// differences on each input channel.
func jacobianAt(fn clf.EvalFunc, x [3]float64) *mat.Dense {
	j := mat.NewDense(3, 3, nil)
	for c := 0; c < 3; c++ {
		plus, minus := x, x
		plus[c] += jacobianEps
		minus[c] -= jacobianEps
		op := fn(clf.Pixel{plus[0], plus[1], plus[2], 1})
		om := fn(clf.Pixel{minus[0], minus[1], minus[2], 1})
		for r := 0; r < 3; r++ {
			j.Set(r, c, (op[r]-om[r])/(2*jacobianEps))
		}
	}
	return j
}

func shaperSize(opts Options) int {
	if opts.ShaperSize > 0 {
		return opts.ShaperSize
	}
	return clf.HalfDomainSize
}

// shaperMapping builds the leading Range operator, when
// opts.ShaperRange deviates from the identity interval, and the
// function mapping a post-shaper [0,1] grid coordinate back to the
// pipeline's original domain so the 3D cube samples fn at the right
// point.
func shaperMapping(opts Options) (*clf.Range, func(s float64) float64) {
	identity := func(s float64) float64 { return s }
	if opts.ShaperRange == nil {
		return nil, identity
	}
	start, end := opts.ShaperRange[0], opts.ShaperRange[1]
	if start == 0 && end == 1 {
		return nil, identity
	}
	r := &clf.Range{MinInValue: start, MaxInValue: end, MinOutValue: 0, MaxOutValue: 1}
	r.InBitDepth, r.OutBitDepth = clf.F32, clf.F32
	return r, func(s float64) float64 { return start + s*(end-start) }
}

// identityLut1D is the pass-through shaper emitted between the Range
// and the 3D cube: the actual domain redistribution already happened
// in the Range, so the shaper LUT itself only needs to exist with the
// requested resolution.
func identityLut1D(size int) *clf.Lut1D {
	values := make([]float64, size*3)
	for i := 0; i < size; i++ {
		x := float64(i) / float64(size-1)
		if size == clf.HalfDomainSize {
			x = float64(clf.HalfToFloat32(uint16(i)))
		}
		values[i*3+0], values[i*3+1], values[i*3+2] = x, x, x
	}
	l := &clf.Lut1D{Array: clf.Array{Dims: []int{size, 3}, Values: values}}
	l.InBitDepth, l.OutBitDepth = clf.F32, clf.F32
	l.HalfDomain = size == clf.HalfDomainSize
	return l
}

// composeShaperThenFn returns the per-pixel kernel the 3D cube must
// encode: map each grid coordinate from shaper space back to the
// original domain, then evaluate fn.
func composeShaperThenFn(fromShaperSpace func(s float64) float64, fn clf.EvalFunc) clf.EvalFunc {
	return func(p clf.Pixel) clf.Pixel {
		return fn(clf.Pixel{fromShaperSpace(p[0]), fromShaperSpace(p[1]), fromShaperSpace(p[2]), p[3]})
	}
}

// build1D samples fn along the diagonal (R=G=B) at size entries,
// producing a Lut1D whose three channels are populated from each
// channel's corresponding output, matching the per-channel-curve shape
// a crosstalk-free pipeline reduces to.
func build1D(fn clf.EvalFunc, size int) *clf.Lut1D {
	values := make([]float64, size*3)
	for i := 0; i < size; i++ {
		x := float64(i) / float64(size-1)
		if size == clf.HalfDomainSize {
			x = float64(clf.HalfToFloat32(uint16(i)))
		}
		out := fn(clf.Pixel{x, x, x, 1})
		values[i*3+0] = out[0]
		values[i*3+1] = out[1]
		values[i*3+2] = out[2]
	}
	l := &clf.Lut1D{Array: clf.Array{Dims: []int{size, 3}, Values: values}}
	l.InBitDepth, l.OutBitDepth = clf.F32, clf.F32
	l.HalfDomain = size == clf.HalfDomainSize
	return l
}

// build3D samples fn on a uniform size^3 grid in blue-fastest order,
// matching the dense-array channel order every Lut3D on disk uses.
func build3D(fn clf.EvalFunc, size int) (*clf.Lut3D, error) {
	if size < 2 {
		return nil, clf.NewError(clf.InvalidCubeSize, "", 0, "bake cube size must be at least 2")
	}
	values := make([]float64, 0, size*size*size*3)
	for ri := 0; ri < size; ri++ {
		r := float64(ri) / float64(size-1)
		for gi := 0; gi < size; gi++ {
			g := float64(gi) / float64(size-1)
			for bi := 0; bi < size; bi++ {
				b := float64(bi) / float64(size-1)
				out := fn(clf.Pixel{r, g, b, 1})
				values = append(values, out[0], out[1], out[2])
			}
		}
	}
	l := &clf.Lut3D{Array: clf.Array{Dims: []int{size, size, size, 3}, Values: values}}
	l.InBitDepth, l.OutBitDepth = clf.F32, clf.F32
	return l, nil
}
