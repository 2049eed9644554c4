/*
NAME
  grading.go

DESCRIPTION
  grading.go implements the three CTF 2.0 grading operators:
  GradingPrimary, GradingRGBCurve and GradingTone. All three share the
  RGBM/RGBMSW attribute shape (rgb="r g b" master="m" [start="s"
  width="w"]) and a style attribute selecting log/lin/video encoding.

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

import "github.com/ausocean/clf"

// parseRGBM reads the "rgb" and "master" attributes shared by every
// grading-bundle leaf element into an RGBM.
func parseRGBM(as *attrSet) (clf.RGBM, error) {
	var m clf.RGBM
	rgb, ok := as.get("rgb")
	if ok {
		vals, err := parseNumberList([]byte(rgb))
		if err != nil || len(vals) != 3 {
			return m, clf.NewError(clf.ArrayLength, as.p.file, as.line, "rgb attribute must have exactly 3 values")
		}
		m.Red, m.Green, m.Blue = vals[0], vals[1], vals[2]
	}
	master, err := as.float("master", 0)
	if err != nil {
		return m, err
	}
	m.Master = master
	return m, nil
}

// parseRGBMSW extends parseRGBM with the start/width pair GradingTone
// uses.
func parseRGBMSW(as *attrSet) (clf.RGBMSW, error) {
	m, err := parseRGBM(as)
	if err != nil {
		return clf.RGBMSW{}, err
	}
	out := clf.RGBMSW{RGBM: m}
	if out.Start, err = as.float("start", 0); err != nil {
		return out, err
	}
	if out.Width, err = as.float("width", 0); err != nil {
		return out, err
	}
	return out, nil
}

// --- GradingPrimary -----------------------------------------------------

type gradingPrimaryBuilder struct {
	p    *parser
	line int
	op   *clf.GradingPrimary
}

func (b *gradingPrimaryBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.GradingPrimary{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	gs, serr := clf.ParseGradingPrimaryStyle(style)
	if serr != nil {
		return serr
	}
	op.Style = gs
	bypass, err := as.bool("localBypass", false)
	if err != nil {
		return err
	}
	op.LocalBypass = bypass
	as.warnUnrecognized()
	op.Saturation = 1
	op.Contrast = clf.RGBM{Red: 1, Green: 1, Blue: 1, Master: 1}
	op.Gamma = clf.RGBM{Red: 1, Green: 1, Blue: 1, Master: 1}
	op.PivotWhite = 1
	op.ClampWhite = 1
	b.op = op
	return nil
}

func (b *gradingPrimaryBuilder) chars(data []byte, trimmed bool) {}

func (b *gradingPrimaryBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "Brightness":
		return &rgbmBuilder{p: b.p, line: line, target: &b.op.Brightness}, true
	case "Contrast":
		return &rgbmBuilder{p: b.p, line: line, target: &b.op.Contrast}, true
	case "Gamma":
		return &rgbmBuilder{p: b.p, line: line, target: &b.op.Gamma}, true
	case "Saturation":
		return &scalarBuilder{p: b.p, line: line, target: &b.op.Saturation}, true
	case "Pivot":
		return &pivotBuilder{p: b.p, line: line, op: b.op}, true
	case "ClampBlack":
		return &scalarBuilder{p: b.p, line: line, target: &b.op.ClampBlack}, true
	case "ClampWhite":
		return &scalarBuilder{p: b.p, line: line, target: &b.op.ClampWhite}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *gradingPrimaryBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// rgbmBuilder parses an RGBM leaf's rgb/master attributes; it has no
// character data or children.
type rgbmBuilder struct {
	p      *parser
	line   int
	target *clf.RGBM
}

func (r *rgbmBuilder) start(attrs []attr) error {
	as := newAttrSet(r.p, r.line, attrs)
	m, err := parseRGBM(as)
	if err != nil {
		return err
	}
	as.warnUnrecognized()
	*r.target = m
	return nil
}
func (r *rgbmBuilder) chars(data []byte, trimmed bool) {}
func (r *rgbmBuilder) end() error                      { return nil }

// pivotBuilder reads GradingPrimary's <Pivot contrast="…" black="…"
// white="…"/> element.
type pivotBuilder struct {
	p    *parser
	line int
	op   *clf.GradingPrimary
}

func (p *pivotBuilder) start(attrs []attr) error {
	as := newAttrSet(p.p, p.line, attrs)
	var err error
	if p.op.Pivot, err = as.float("contrast", 0); err != nil {
		return err
	}
	if p.op.PivotBlack, err = as.float("black", 0); err != nil {
		return err
	}
	if p.op.PivotWhite, err = as.float("white", 1); err != nil {
		return err
	}
	as.warnUnrecognized()
	return nil
}
func (p *pivotBuilder) chars(data []byte, trimmed bool) {}
func (p *pivotBuilder) end() error                      { return nil }

// --- GradingTone ----------------------------------------------------------

type gradingToneBuilder struct {
	p    *parser
	line int
	op   *clf.GradingTone
}

func (b *gradingToneBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.GradingTone{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	gs, serr := clf.ParseGradingPrimaryStyle(style)
	if serr != nil {
		return serr
	}
	op.Style = gs
	bypass, err := as.bool("localBypass", false)
	if err != nil {
		return err
	}
	op.LocalBypass = bypass
	as.warnUnrecognized()
	for _, m := range []*clf.RGBMSW{&op.Blacks, &op.Shadows, &op.Midtones, &op.Highlights, &op.Whites} {
		m.Master = 1
		m.Red, m.Green, m.Blue = 1, 1, 1
	}
	b.op = op
	return nil
}

func (b *gradingToneBuilder) chars(data []byte, trimmed bool) {}

func (b *gradingToneBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "Blacks":
		return &rgbmswBuilder{p: b.p, line: line, target: &b.op.Blacks}, true
	case "Shadows":
		return &rgbmswBuilder{p: b.p, line: line, target: &b.op.Shadows}, true
	case "Midtones":
		return &rgbmswBuilder{p: b.p, line: line, target: &b.op.Midtones}, true
	case "Highlights":
		return &rgbmswBuilder{p: b.p, line: line, target: &b.op.Highlights}, true
	case "Whites":
		return &rgbmswBuilder{p: b.p, line: line, target: &b.op.Whites}, true
	case "SContrast":
		return &scalarBuilder{p: b.p, line: line, target: &b.op.SContrast}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *gradingToneBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

type rgbmswBuilder struct {
	p      *parser
	line   int
	target *clf.RGBMSW
}

func (r *rgbmswBuilder) start(attrs []attr) error {
	as := newAttrSet(r.p, r.line, attrs)
	m, err := parseRGBMSW(as)
	if err != nil {
		return err
	}
	as.warnUnrecognized()
	*r.target = m
	return nil
}
func (r *rgbmswBuilder) chars(data []byte, trimmed bool) {}
func (r *rgbmswBuilder) end() error                      { return nil }

// --- GradingRGBCurve --------------------------------------------------------

type gradingRGBCurveBuilder struct {
	p    *parser
	line int
	op   *clf.GradingRGBCurve
}

func (b *gradingRGBCurveBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.GradingRGBCurve{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	gs, serr := clf.ParseGradingPrimaryStyle(style)
	if serr != nil {
		return serr
	}
	op.Style = gs
	bypass, err := as.bool("localBypass", false)
	if err != nil {
		return err
	}
	op.LocalBypass = bypass
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *gradingRGBCurveBuilder) chars(data []byte, trimmed bool) {}

func (b *gradingRGBCurveBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "RedCurve":
		return &curveBuilder{p: b.p, line: line, target: &b.op.Red}, true
	case "GreenCurve":
		return &curveBuilder{p: b.p, line: line, target: &b.op.Green}, true
	case "BlueCurve":
		return &curveBuilder{p: b.p, line: line, target: &b.op.Blue}, true
	case "MasterCurve":
		return &curveBuilder{p: b.p, line: line, target: &b.op.Master}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *gradingRGBCurveBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// curveBuilder reads one RedCurve/GreenCurve/BlueCurve/MasterCurve
// element: a <ControlPoints> list of x,y pairs and an optional
// <Slopes> list with one entry per point.
type curveBuilder struct {
	p      *parser
	line   int
	target *clf.BSplineCurve
}

func (c *curveBuilder) start(attrs []attr) error        { return nil }
func (c *curveBuilder) chars(data []byte, trimmed bool) {}
func (c *curveBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "ControlPoints":
		return &numberListBuilder{onEnd: func(vals []float64) {
			c.target.Points = make([]clf.ControlPoint, 0, len(vals)/2)
			for i := 0; i+1 < len(vals); i += 2 {
				c.target.Points = append(c.target.Points, clf.ControlPoint{X: vals[i], Y: vals[i+1]})
			}
		}}, true
	case "Slopes":
		return &numberListBuilder{onEnd: func(vals []float64) { c.target.Slopes = vals }}, true
	}
	return nil, false
}
func (c *curveBuilder) end() error { return nil }
