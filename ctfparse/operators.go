/*
NAME
  operators.go

DESCRIPTION
  operators.go implements the per-operator-type readers: Matrix,
  Lut1D/InvLut1D, Lut3D/InvLut3D, Range, Reference, FixedFunction,
  Function and ExposureContrast. Each builder parses its attributes on
  start, accepts its documented sub-elements via child, and on end
  invokes the operator's Validate and hands it to the owning
  ProcessList.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ctfparse

import (
	"fmt"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/invert"
)

// defaultInvLut3DSize is the fast-forward sampling grid used for an
// InvLut3D whose own array declares no usable size; in practice every
// parsed InvLut3D has a concrete L to reuse instead.
const defaultInvLut3DSize = 33

// parseCommonAttrs parses the attributes every operator shares: the
// required id/inBitDepth/outBitDepth triple and the optional name.
func parseCommonAttrs(base *clf.OpBase, as *attrSet) error {
	id, err := as.require("id")
	if err != nil {
		return err
	}
	base.ID = id
	if name, ok := as.get("name"); ok {
		base.Name = name
	}
	inBD, err := as.bitDepth("inBitDepth")
	if err != nil {
		return err
	}
	outBD, err := as.bitDepth("outBitDepth")
	if err != nil {
		return err
	}
	base.InBitDepth = inBD
	base.OutBitDepth = outBD
	return nil
}

// --- Matrix -----------------------------------------------------------

type matrixBuilder struct {
	p    *parser
	line int
	op   *clf.Matrix
}

func (b *matrixBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Matrix{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *matrixBuilder) chars(data []byte, trimmed bool) {}

func (b *matrixBuilder) child(name string, line int) (builder, bool) {
	if name == "Array" {
		return &arrayBuilder{p: b.p, line: line, onEnd: func(a clf.Array) error {
			coeffs, offsets, n, err := clf.MatrixFromArray(a)
			if err != nil {
				return err
			}
			b.op.Size, b.op.Coeffs, b.op.Offsets = n, coeffs, offsets
			return nil
		}}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *matrixBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	if b.op.Direction == clf.Inverse {
		// No CTF/CLF element ever sets a Matrix's direction to Inverse
		// today (unlike InvLut1D/InvLut3D's distinct tag names), but the
		// data model carries Direction on every operator per the shared
		// OpBase contract, so a future reader variant or a
		// programmatically constructed ProcessList can still reach this
		// path; resolve it the same way package invert resolves every
		// other inverse operator, rather than leaving it silently inert.
		inv, err := invert.Matrix(b.op)
		if err != nil {
			return attachContext(err, b.p.file, b.line)
		}
		b.p.appendOp(inv)
		return nil
	}
	b.p.appendOp(b.op)
	return nil
}

// --- Lut1D / InvLut1D / Lut3D / InvLut3D -------------------------------

var interp1DNames = map[string]clf.Interpolation1D{
	"default": clf.Interp1DDefault, "linear": clf.Interp1DLinear,
	"nearest": clf.Interp1DNearest, "cubic": clf.Interp1DCubic,
}

var interp3DNames = map[string]clf.Interpolation3D{
	"default": clf.Interp3DDefault, "linear": clf.Interp3DLinear,
	"tetrahedral": clf.Interp3DTetrahedral,
}

var hueAdjustNames = map[string]clf.HueAdjust{
	"none": clf.HueAdjustNone, "dw3": clf.HueAdjustDW3,
}

type lutBuilder struct {
	p       *parser
	line    int
	is3D    bool
	inverse bool

	op1D *clf.Lut1D
	op3D *clf.Lut3D

	pendingRange *clf.Range
}

func (b *lutBuilder) base() *clf.OpBase {
	if b.is3D {
		return &b.op3D.OpBase
	}
	return &b.op1D.OpBase
}

func (b *lutBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	base := clf.OpBase{Direction: direction(b.inverse)}
	if err := parseCommonAttrs(&base, as); err != nil {
		return err
	}

	if b.is3D {
		op := &clf.Lut3D{OpBase: base}
		if s, ok := as.get("interpolation"); ok {
			interp, ok := interp3DNames[s]
			if !ok {
				return clf.NewError(clf.UnknownStyle, b.p.file, b.line, fmt.Sprintf("unknown Lut3D interpolation %q", s))
			}
			op.Interpolation = interp
		}
		b.op3D = op
	} else {
		op := &clf.Lut1D{OpBase: base}
		if s, ok := as.get("interpolation"); ok {
			interp, ok := interp1DNames[s]
			if !ok {
				return clf.NewError(clf.UnknownStyle, b.p.file, b.line, fmt.Sprintf("unknown Lut1D interpolation %q", s))
			}
			op.Interpolation = interp
		}
		half, err := as.bool("halfDomain", false)
		if err != nil {
			return err
		}
		raw, err := as.bool("rawHalfs", false)
		if err != nil {
			return err
		}
		op.HalfDomain, op.RawHalfs = half, raw
		if s, ok := as.get("hueAdjust"); ok {
			hue, ok := hueAdjustNames[s]
			if !ok {
				return clf.NewError(clf.UnknownStyle, b.p.file, b.line, fmt.Sprintf("unknown Lut1D hueAdjust %q", s))
			}
			op.Hue = hue
		}
		if op.Direction == clf.Forward {
			op.FileOutputBitDepth = op.OutBitDepth
		} else {
			op.FileOutputBitDepth = op.InBitDepth
		}
		b.op1D = op
	}
	as.warnUnrecognized()
	return nil
}

func (b *lutBuilder) chars(data []byte, trimmed bool) {}

func (b *lutBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "Array":
		if b.is3D {
			return &arrayBuilder{p: b.p, line: line, onEnd: func(a clf.Array) error {
				dims, err := clf.NormalizeLut3DDims(a.Dims)
				if err != nil {
					return err
				}
				want := 1
				for _, d := range dims {
					want *= d
				}
				if len(a.Values) != want {
					return clf.NewError(clf.ArrayLength, b.p.file, line, "Lut3D array value count disagrees with its normalized dims")
				}
				a.Dims = dims
				b.op3D.Array = a
				return nil
			}}, true
		}
		return &arrayBuilder{p: b.p, line: line, onEnd: func(a clf.Array) error {
			if err := a.Validate(); err != nil {
				return err
			}
			if a.NeedsReplication() {
				a = a.ReplicateChannel()
			}
			b.op1D.Array = a
			return nil
		}}, true
	case "IndexMap":
		base := b.base()
		return &indexMapBuilder{p: b.p, line: line, onEnd: func(im clf.IndexMap) error {
			if clf.Log != nil {
				clf.Log.Warning("IndexMap is a legacy CLF<=2.0 construct; materializing a prepended Range", "id", base.ID)
			}
			rng, err := im.ToRange(base.ID, base.InBitDepth, base.InBitDepth)
			if err != nil {
				return err
			}
			b.pendingRange = rng
			return nil
		}}, true
	}
	return commonChild(b.p, line, b.base(), name)
}

func (b *lutBuilder) end() error {
	if b.pendingRange != nil {
		if err := b.pendingRange.Validate(); err != nil {
			return err
		}
		b.p.appendOp(b.pendingRange)
	}
	if b.is3D {
		if err := b.op3D.Validate(); err != nil {
			return err
		}
		if b.op3D.Direction == clf.Inverse {
			size := defaultInvLut3DSize
			if len(b.op3D.Array.Dims) > 0 && b.op3D.Array.Dims[0] >= 2 {
				size = b.op3D.Array.Dims[0]
			}
			if err := invert.Lut3D(b.op3D, size); err != nil {
				return attachContext(err, b.p.file, b.line)
			}
		}
		b.p.appendOp(b.op3D)
		return nil
	}
	if err := b.op1D.Validate(); err != nil {
		return err
	}
	if b.op1D.Direction == clf.Inverse {
		if err := invert.Lut1D(b.op1D); err != nil {
			return attachContext(err, b.p.file, b.line)
		}
	}
	b.p.appendOp(b.op1D)
	return nil
}

// --- Range --------------------------------------------------------------

type rangeBuilder struct {
	p    *parser
	line int
	op   *clf.Range
}

func (b *rangeBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Range{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	var err error
	if op.MinInValue, err = as.float("minInValue", 0); err != nil {
		return err
	}
	if op.MaxInValue, err = as.float("maxInValue", 1); err != nil {
		return err
	}
	if op.MinOutValue, err = as.float("minOutValue", 0); err != nil {
		return err
	}
	if op.MaxOutValue, err = as.float("maxOutValue", 1); err != nil {
		return err
	}
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *rangeBuilder) chars(data []byte, trimmed bool) {}

func (b *rangeBuilder) child(name string, line int) (builder, bool) {
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *rangeBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// --- Reference ------------------------------------------------------------

type referenceBuilder struct {
	p    *parser
	line int
	op   *clf.Reference
}

func (b *referenceBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Reference{}
	id, err := as.require("id")
	if err != nil {
		return err
	}
	op.ID = id
	if path, ok := as.get("path"); ok {
		op.Path = path
	}
	if alias, ok := as.get("alias"); ok {
		op.Alias = alias
	}
	inv, err := as.bool("inverted", false)
	if err != nil {
		return err
	}
	op.IsInverted = inv
	if base, ok := as.get("basePath"); ok {
		op.BasePathHint = base
	}
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *referenceBuilder) chars(data []byte, trimmed bool) {}
func (b *referenceBuilder) child(name string, line int) (builder, bool) {
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *referenceBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// --- FixedFunction --------------------------------------------------------

type fixedFunctionBuilder struct {
	p    *parser
	line int
	op   *clf.FixedFunction
}

func (b *fixedFunctionBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.FixedFunction{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	ffs, err := clf.ParseFixedFunctionStyle(style)
	if err != nil {
		return err
	}
	op.Style = ffs
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *fixedFunctionBuilder) chars(data []byte, trimmed bool) {}

func (b *fixedFunctionBuilder) child(name string, line int) (builder, bool) {
	if name == "Params" {
		return &numberListBuilder{onEnd: func(vals []float64) { b.op.Params = vals }}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *fixedFunctionBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// --- Function (CTF-only) ---------------------------------------------------

type functionBuilder struct {
	p    *parser
	line int
	op   *clf.Function
}

func (b *functionBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Function{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	op.Style = style
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *functionBuilder) chars(data []byte, trimmed bool) {}

func (b *functionBuilder) child(name string, line int) (builder, bool) {
	if name == "Params" {
		md := newMetadataBuilder("Params")
		md.onEnd = func(n *clf.FormatMetadata) { b.op.Params = n }
		return md, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *functionBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// --- ExposureContrast -------------------------------------------------------

type ecBuilder struct {
	p    *parser
	line int
	op   *clf.ExposureContrast
}

func (b *ecBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.ExposureContrast{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	ecs, err := clf.ParseECStyle(style)
	if err != nil {
		return err
	}
	op.Style = ecs
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *ecBuilder) chars(data []byte, trimmed bool) {}

func (b *ecBuilder) child(name string, line int) (builder, bool) {
	if name == "ECParams" {
		return &ecParamsBuilder{p: b.p, line: line, op: b.op}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *ecBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

type ecParamsBuilder struct {
	p    *parser
	line int
	op   *clf.ExposureContrast
}

func (b *ecParamsBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	var err error
	if b.op.Exposure, err = as.float("exposure", 0); err != nil {
		return err
	}
	if b.op.Contrast, err = as.float("contrast", 1); err != nil {
		return err
	}
	if b.op.Gamma, err = as.float("gamma", 1); err != nil {
		return err
	}
	if b.op.Pivot, err = as.float("pivot", 0); err != nil {
		return err
	}
	if b.op.LogExposureStep, err = as.float("logExposureStep", 0.1); err != nil {
		return err
	}
	if b.op.LogMidGray, err = as.float("logMidGray", 0.18); err != nil {
		return err
	}
	as.warnUnrecognized()
	return nil
}
func (b *ecParamsBuilder) chars(data []byte, trimmed bool) {}
func (b *ecParamsBuilder) end() error                      { return nil }

// --- shared small helpers ---------------------------------------------------

// numberListBuilder collects a whitespace/comma-delimited run of floats
// from an element's character data, used by leaf elements like
// FixedFunction's <Params>.
type numberListBuilder struct {
	buf   []byte
	onEnd func([]float64)
}

func (n *numberListBuilder) start(attrs []attr) error { return nil }
func (n *numberListBuilder) chars(data []byte, trimmed bool) {
	n.buf = append(n.buf, data...)
	n.buf = append(n.buf, ' ')
}
func (n *numberListBuilder) end() error {
	vals, err := parseNumberList(n.buf)
	if err != nil {
		return err
	}
	n.onEnd(vals)
	return nil
}
