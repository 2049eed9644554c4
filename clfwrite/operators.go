/*
NAME
  operators.go

DESCRIPTION
  operators.go writes each of the 17 operator variants back to CLF/CTF
  XML, denormalizing from the 32f in-memory representation back into
  the bit depths recorded on OpBase at read time.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clfwrite

import (
	"strconv"

	"github.com/ausocean/clf"
)

// commonAttrs builds the id/name/inBitDepth/outBitDepth attribute list
// every operator element shares.
func commonAttrs(b *clf.OpBase) attrList {
	a := attrList{{"id", b.ID}}
	a = a.with("name", b.Name)
	a = a.with("inBitDepth", b.InBitDepth.String())
	a = a.with("outBitDepth", b.OutBitDepth.String())
	return a
}

// writeOp dispatches to the per-type writer for op, wrapping its
// element with the operator's shared Description/metadata children.
func (w *xmlWriter) writeOp(op clf.Operator) error {
	switch o := op.(type) {
	case *clf.Matrix:
		return w.writeMatrix(o)
	case *clf.Lut1D:
		return w.writeLut1D(o)
	case *clf.Lut3D:
		return w.writeLut3D(o)
	case *clf.Range:
		w.writeRange(o)
	case *clf.CDL:
		w.writeCDL(o)
	case *clf.Log:
		w.writeLog(o)
	case *clf.Gamma:
		w.writeGamma(o)
	case *clf.ExposureContrast:
		w.writeExposureContrast(o)
	case *clf.FixedFunction:
		w.writeFixedFunction(o)
	case *clf.Function:
		w.writeFunction(o)
	case *clf.GradingPrimary:
		w.writeGradingPrimary(o)
	case *clf.GradingRGBCurve:
		w.writeGradingRGBCurve(o)
	case *clf.GradingTone:
		w.writeGradingTone(o)
	case *clf.Reference:
		w.writeReference(o)
	default:
		return clf.NewError(clf.UnsupportedOperator, "", 0, "writer has no encoder for this operator type")
	}
	return nil
}

var dynamicParamOrder = []struct {
	param clf.DynamicParam
	name  string
}{
	{clf.DynExposure, "EXPOSURE"},
	{clf.DynContrast, "CONTRAST"},
	{clf.DynGamma, "GAMMA"},
	{clf.DynGradingPrimary, "PRIMARY"},
	{clf.DynGradingRGBCurve, "RGB_CURVE"},
	{clf.DynGradingTone, "TONE"},
}

// writeOpBody writes the Description, DynamicParameter and Metadata
// children shared by every operator, inside the caller's already-open
// element.
func (w *xmlWriter) writeOpBody(b *clf.OpBase) {
	for _, d := range b.Descriptions {
		w.leaf("Description", nil, d)
	}
	for _, dp := range dynamicParamOrder {
		if b.IsDynamic(dp.param) {
			w.selfClose("DynamicParameter", attrList{{"name", dp.name}})
		}
	}
	if b.Metadata != nil {
		w.writeMetadata(b.Metadata)
	}
}

// --- Matrix -----------------------------------------------------------

func (w *xmlWriter) writeMatrix(m *clf.Matrix) error {
	attrs := commonAttrs(&m.OpBase)
	w.open("Matrix", attrs)
	w.writeOpBody(&m.OpBase)

	inScale, outScale := m.InBitDepth.Scale(), m.OutBitDepth.Scale()
	factor := outScale / inScale // inverse of Normalize's inScale/outScale.
	n := m.Size
	values := make([]float64, 0, n*(n+1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			values = append(values, m.At(r, c)*factor)
		}
		values = append(values, m.Offsets[r]*outScale)
	}
	w.numbers("Array", attrList{{"dim", dims(n, n+1)}}, values, n+1)
	w.close("Matrix")
	return nil
}

// --- Lut1D / InvLut1D ---------------------------------------------------

func (w *xmlWriter) writeLut1D(l *clf.Lut1D) error {
	tag := "Lut1D"
	if l.Direction == clf.Inverse {
		tag = "InvLut1D"
	}
	attrs := commonAttrs(&l.OpBase)
	attrs = attrs.with("interpolation", nonDefaultInterp1D(l.Interpolation))
	if l.HalfDomain {
		attrs = append(attrs, [2]string{"halfDomain", "true"})
	}
	if l.RawHalfs {
		attrs = append(attrs, [2]string{"rawHalfs", "true"})
	}
	if l.Hue != clf.HueAdjustNone {
		attrs = append(attrs, [2]string{"hueAdjust", l.Hue.String()})
	}
	w.open(tag, attrs)
	w.writeOpBody(&l.OpBase)

	scale := l.OutBitDepth.Scale()
	if l.Direction == clf.Inverse {
		scale = l.InBitDepth.Scale()
	}
	values := make([]float64, len(l.Array.Values))
	for i, v := range l.Array.Values {
		values[i] = v * scale
	}
	w.numbers("Array", attrList{{"dim", dims(l.Length(), 3)}}, values, 3)
	w.close(tag)
	return nil
}

func nonDefaultInterp1D(i clf.Interpolation1D) string {
	if i == clf.Interp1DDefault {
		return ""
	}
	return i.String()
}

// --- Lut3D / InvLut3D ---------------------------------------------------

func (w *xmlWriter) writeLut3D(l *clf.Lut3D) error {
	tag := "Lut3D"
	if l.Direction == clf.Inverse {
		tag = "InvLut3D"
	}
	attrs := commonAttrs(&l.OpBase)
	if l.Interpolation != clf.Interp3DDefault {
		attrs = append(attrs, [2]string{"interpolation", l.Interpolation.String()})
	}
	w.open(tag, attrs)
	w.writeOpBody(&l.OpBase)

	scale := l.OutBitDepth.Scale()
	if l.Direction == clf.Inverse {
		scale = l.InBitDepth.Scale()
	}
	values := make([]float64, len(l.Array.Values))
	for i, v := range l.Array.Values {
		values[i] = v * scale
	}
	L := l.Size()
	w.numbers("Array", attrList{{"dim", dims(L, L, L, 3)}}, values, 3)
	w.close(tag)
	return nil
}

// --- Range --------------------------------------------------------------

func (w *xmlWriter) writeRange(r *clf.Range) {
	inScale, outScale := r.InBitDepth.Scale(), r.OutBitDepth.Scale()
	attrs := commonAttrs(&r.OpBase)
	attrs = append(attrs,
		[2]string{"minInValue", formatFloat(r.MinInValue * inScale)},
		[2]string{"maxInValue", formatFloat(r.MaxInValue * inScale)},
		[2]string{"minOutValue", formatFloat(r.MinOutValue * outScale)},
		[2]string{"maxOutValue", formatFloat(r.MaxOutValue * outScale)},
	)
	w.open("Range", attrs)
	w.writeOpBody(&r.OpBase)
	w.close("Range")
}

// --- CDL ------------------------------------------------------------------

func (w *xmlWriter) writeCDL(c *clf.CDL) {
	attrs := commonAttrs(&c.OpBase)
	attrs = attrs.with("style", c.Style.String())
	w.open("CDL", attrs)
	w.writeOpBody(&c.OpBase)

	w.open("SOPNode", nil)
	w.leaf("Slope", nil, triple(c.Slope))
	w.leaf("Offset", nil, triple(c.Offset))
	w.leaf("Power", nil, triple(c.Power))
	w.close("SOPNode")

	w.open("SatNode", nil)
	w.leaf("Saturation", nil, formatFloat(c.Saturation))
	w.close("SatNode")

	w.close("CDL")
}

func triple(v [3]float64) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}

// --- Log --------------------------------------------------------------

var logStyleNames = map[clf.LogStyle]string{
	clf.LogLog10: "log10", clf.LogLog10Rev: "antiLog10",
	clf.LogLog2: "log2", clf.LogLog2Rev: "antiLog2",
	clf.LogLinToLog: "linToLog", clf.LogLogToLin: "logToLin",
	clf.LogCameraLinToLog: "cameraLinToLog", clf.LogCameraLogToLin: "cameraLogToLin",
}

func (w *xmlWriter) writeLog(l *clf.Log) {
	attrs := commonAttrs(&l.OpBase)
	attrs = attrs.with("style", logStyleNames[l.Style])
	w.open("Log", attrs)
	w.writeOpBody(&l.OpBase)
	for _, p := range l.Params {
		pattrs := attrList{
			{"base", formatFloat(p.Base)},
			{"logSideSlope", formatFloat(p.LogSideSlope)},
			{"logSideOffset", formatFloat(p.LogSideOffset)},
			{"linSideSlope", formatFloat(p.LinSideSlope)},
			{"linSideOffset", formatFloat(p.LinSideOffset)},
		}
		if p.HasLinSideBreak {
			pattrs = append(pattrs, [2]string{"linSideBreak", formatFloat(p.LinSideBreak)})
		}
		if p.HasLinearSlope {
			pattrs = append(pattrs, [2]string{"linearSlope", formatFloat(p.LinearSlope)})
		}
		w.selfClose("LogParams", pattrs)
	}
	w.close("Log")
}

// --- Gamma --------------------------------------------------------------

func (w *xmlWriter) writeGamma(g *clf.Gamma) {
	attrs := commonAttrs(&g.OpBase)
	attrs = attrs.with("style", g.Style.String())
	w.open("Gamma", attrs)
	w.writeOpBody(&g.OpBase)
	names := []string{"R", "G", "B", "A"}
	for i, p := range g.Params {
		pattrs := attrList{{"channel", names[i]}, {"gamma", formatFloat(p.Gamma)}}
		if p.Offset != 0 {
			pattrs = append(pattrs, [2]string{"offset", formatFloat(p.Offset)})
		}
		w.selfClose("GammaParams", pattrs)
	}
	w.close("Gamma")
}

// --- ExposureContrast -----------------------------------------------------

func (w *xmlWriter) writeExposureContrast(e *clf.ExposureContrast) {
	attrs := commonAttrs(&e.OpBase)
	attrs = attrs.with("style", e.Style.String())
	w.open("ExposureContrast", attrs)
	w.writeOpBody(&e.OpBase)
	pattrs := attrList{
		{"exposure", formatFloat(e.Exposure)},
		{"contrast", formatFloat(e.Contrast)},
		{"gamma", formatFloat(e.Gamma)},
		{"pivot", formatFloat(e.Pivot)},
		{"logExposureStep", formatFloat(e.LogExposureStep)},
		{"logMidGray", formatFloat(e.LogMidGray)},
	}
	w.selfClose("ECParams", pattrs)
	w.close("ExposureContrast")
}

// --- FixedFunction --------------------------------------------------------

func (w *xmlWriter) writeFixedFunction(f *clf.FixedFunction) {
	attrs := commonAttrs(&f.OpBase)
	attrs = attrs.with("style", f.Style.String())
	w.open("FixedFunction", attrs)
	w.writeOpBody(&f.OpBase)
	if len(f.Params) > 0 {
		w.numbers("Params", nil, f.Params, 0)
	}
	w.close("FixedFunction")
}

// --- Function ---------------------------------------------------------

func (w *xmlWriter) writeFunction(f *clf.Function) {
	attrs := commonAttrs(&f.OpBase)
	attrs = attrs.with("style", f.Style)
	w.open("Function", attrs)
	w.writeOpBody(&f.OpBase)
	if f.Params != nil {
		w.writeMetadata(f.Params)
	}
	w.close("Function")
}

// --- GradingPrimary -------------------------------------------------------

func (w *xmlWriter) writeGradingPrimary(g *clf.GradingPrimary) {
	attrs := commonAttrs(&g.OpBase)
	attrs = attrs.with("style", g.Style.String())
	w.open("GradingPrimary", attrs)
	w.writeOpBody(&g.OpBase)
	w.writeRGBM("Brightness", g.Brightness)
	w.writeRGBM("Contrast", g.Contrast)
	w.writeRGBM("Gamma", g.Gamma)
	w.leaf("Saturation", nil, formatFloat(g.Saturation))
	w.selfClose("Pivot", attrList{
		{"contrast", formatFloat(g.Pivot)},
		{"black", formatFloat(g.PivotBlack)},
		{"white", formatFloat(g.PivotWhite)},
	})
	w.leaf("ClampBlack", nil, formatFloat(g.ClampBlack))
	w.leaf("ClampWhite", nil, formatFloat(g.ClampWhite))
	w.close("GradingPrimary")
}

func rgbAttr(r, g, b float64) string {
	return formatFloat(r) + " " + formatFloat(g) + " " + formatFloat(b)
}

func (w *xmlWriter) writeRGBM(name string, v clf.RGBM) {
	w.selfClose(name, attrList{
		{"rgb", rgbAttr(v.Red, v.Green, v.Blue)},
		{"master", formatFloat(v.Master)},
	})
}

func (w *xmlWriter) writeRGBMSW(name string, v clf.RGBMSW) {
	w.selfClose(name, attrList{
		{"rgb", rgbAttr(v.Red, v.Green, v.Blue)},
		{"master", formatFloat(v.Master)},
		{"start", formatFloat(v.Start)},
		{"width", formatFloat(v.Width)},
	})
}

// --- GradingRGBCurve ------------------------------------------------------

func (w *xmlWriter) writeGradingRGBCurve(g *clf.GradingRGBCurve) {
	attrs := commonAttrs(&g.OpBase)
	attrs = attrs.with("style", g.Style.String())
	w.open("GradingRGBCurve", attrs)
	w.writeOpBody(&g.OpBase)
	w.writeCurve("RedCurve", g.Red)
	w.writeCurve("GreenCurve", g.Green)
	w.writeCurve("BlueCurve", g.Blue)
	w.writeCurve("MasterCurve", g.Master)
	w.close("GradingRGBCurve")
}

func (w *xmlWriter) writeCurve(name string, c clf.BSplineCurve) {
	w.open(name, nil)
	pts := make([]float64, 0, len(c.Points)*2)
	for _, p := range c.Points {
		pts = append(pts, p.X, p.Y)
	}
	w.numbers("ControlPoints", attrList{{"dim", dims(len(c.Points), 2)}}, pts, 2)
	if c.HasSlopes() {
		w.numbers("Slopes", attrList{{"dim", strconv.Itoa(len(c.Slopes))}}, c.Slopes, 0)
	}
	w.close(name)
}

// --- GradingTone ----------------------------------------------------------

func (w *xmlWriter) writeGradingTone(g *clf.GradingTone) {
	attrs := commonAttrs(&g.OpBase)
	attrs = attrs.with("style", g.Style.String())
	w.open("GradingTone", attrs)
	w.writeOpBody(&g.OpBase)
	w.writeRGBMSW("Blacks", g.Blacks)
	w.writeRGBMSW("Shadows", g.Shadows)
	w.writeRGBMSW("Midtones", g.Midtones)
	w.writeRGBMSW("Highlights", g.Highlights)
	w.writeRGBMSW("Whites", g.Whites)
	w.leaf("SContrast", nil, formatFloat(g.SContrast))
	w.close("GradingTone")
}

// --- Reference --------------------------------------------------------

func (w *xmlWriter) writeReference(r *clf.Reference) {
	attrs := attrList{{"id", r.ID}}
	attrs = attrs.with("name", r.Name)
	attrs = attrs.with("path", r.Path)
	attrs = attrs.with("alias", r.Alias)
	if r.IsInverted {
		attrs = append(attrs, [2]string{"inverted", "true"})
	}
	attrs = attrs.with("basePath", r.BasePathHint)
	w.selfClose("Reference", attrs)
}

// dims renders a dimension list as the space-separated "dim" attribute
// value CLF/CTF <Array> and <ControlPoints> elements use.
func dims(vs ...int) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += " "
		}
		s += strconv.Itoa(v)
	}
	return s
}
