/*
NAME
  cdl.go

DESCRIPTION
  cdl.go implements the CDL operator reader, plus its SOPNode/SatNode
  sub-grammar shared by the bare <CDL> element and the three ASC CDL
  dialect roots wired up in root.go.

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
)

type cdlBuilder struct {
	p    *parser
	line int
	op   *clf.CDL

	// ccc is set only when this builder reads a ColorCorrection child of
	// a ColorCorrectionCollection root, so end() can check for a
	// duplicate id across siblings.
	ccc *rootBuilder
}

func (b *cdlBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.CDL{
		Slope:      [3]float64{1, 1, 1},
		Power:      [3]float64{1, 1, 1},
		Saturation: 1,
	}
	id, err := as.require("id")
	if err != nil {
		return err
	}
	op.ID = id
	if name, ok := as.get("name"); ok {
		op.Name = name
	}
	if inBD, ok := as.get("inBitDepth"); ok {
		bd, ok2 := clf.ParseBitDepth(inBD)
		if !ok2 {
			return clf.NewError(clf.MissingAttribute, b.p.file, b.line, fmt.Sprintf("unrecognized inBitDepth %q", inBD))
		}
		op.InBitDepth = bd
	} else {
		op.InBitDepth = clf.F32
	}
	if outBD, ok := as.get("outBitDepth"); ok {
		bd, ok2 := clf.ParseBitDepth(outBD)
		if !ok2 {
			return clf.NewError(clf.MissingAttribute, b.p.file, b.line, fmt.Sprintf("unrecognized outBitDepth %q", outBD))
		}
		op.OutBitDepth = bd
	} else {
		op.OutBitDepth = clf.F32
	}
	if style, ok := as.get("style"); ok {
		s, serr := clf.ParseCDLStyle(style)
		if serr != nil {
			return serr
		}
		op.Style = s
	}
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *cdlBuilder) chars(data []byte, trimmed bool) {}

func (b *cdlBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "SOPNode":
		return &sopNodeBuilder{p: b.p, op: b.op}, true
	case "SatNode":
		return &satNodeBuilder{p: b.p, op: b.op}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *cdlBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	if b.ccc != nil {
		if err := b.ccc.recordCDLID(b.op.ID, b.p.file, b.line); err != nil {
			return err
		}
	}
	return nil
}

// sopNodeBuilder is the SOPNode container: Slope, Offset and Power,
// each a whitespace-delimited triple.
type sopNodeBuilder struct {
	p  *parser
	op *clf.CDL
}

func (s *sopNodeBuilder) start(attrs []attr) error        { return nil }
func (s *sopNodeBuilder) chars(data []byte, trimmed bool) {}
func (s *sopNodeBuilder) child(name string, line int) (builder, bool) {
	switch name {
	case "Slope":
		return &tripleBuilder{p: s.p, line: line, target: &s.op.Slope}, true
	case "Offset":
		return &tripleBuilder{p: s.p, line: line, target: &s.op.Offset}, true
	case "Power":
		return &tripleBuilder{p: s.p, line: line, target: &s.op.Power}, true
	}
	return nil, false
}
func (s *sopNodeBuilder) end() error { return nil }

// satNodeBuilder is the SatNode container: a single Saturation value.
type satNodeBuilder struct {
	p  *parser
	op *clf.CDL
}

func (s *satNodeBuilder) start(attrs []attr) error        { return nil }
func (s *satNodeBuilder) chars(data []byte, trimmed bool) {}
func (s *satNodeBuilder) child(name string, line int) (builder, bool) {
	if name == "Saturation" {
		return &scalarBuilder{p: s.p, line: line, target: &s.op.Saturation}, true
	}
	return nil, false
}
func (s *satNodeBuilder) end() error { return nil }

// tripleBuilder parses an element's chardata as exactly 3 numbers into
// a [3]float64 target, used by Slope/Offset/Power.
type tripleBuilder struct {
	p      *parser
	line   int
	buf    []byte
	target *[3]float64
}

func (t *tripleBuilder) start(attrs []attr) error { return nil }
func (t *tripleBuilder) chars(data []byte, trimmed bool) {
	t.buf = append(t.buf, data...)
	t.buf = append(t.buf, ' ')
}
func (t *tripleBuilder) end() error {
	vals, err := parseNumberList(t.buf)
	if err != nil {
		return clf.NewError(clf.InvalidNumber, t.p.file, t.line, "malformed number in SOPNode triple")
	}
	if len(vals) != 3 {
		return clf.NewError(clf.ArrayLength, t.p.file, t.line,
			fmt.Sprintf("SOPNode triple has %d values, want 3", len(vals)))
	}
	copy(t.target[:], vals)
	return nil
}

// scalarBuilder parses an element's chardata as a single number into a
// float64 target, used by Saturation and the grading-bundle leaves.
type scalarBuilder struct {
	p      *parser
	line   int
	buf    []byte
	target *float64
}

func (s *scalarBuilder) start(attrs []attr) error { return nil }
func (s *scalarBuilder) chars(data []byte, trimmed bool) {
	s.buf = append(s.buf, data...)
}
func (s *scalarBuilder) end() error {
	vals, err := parseNumberList(s.buf)
	if err != nil || len(vals) != 1 {
		return clf.NewError(clf.InvalidNumber, s.p.file, s.line, "expected a single number")
	}
	*s.target = vals[0]
	return nil
}
