/*
NAME
  log.go

DESCRIPTION
  log.go implements the Log operator reader: style attribute plus one
  or more <LogParams>, each carrying either the legacy Cineon
  parameterization or the modern OCIO one (never both), normalized to
  OCIOParams on the way in.

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

var logStyleNames = map[string]clf.LogStyle{
	"log10": clf.LogLog10, "antiLog10": clf.LogLog10Rev,
	"log2": clf.LogLog2, "antiLog2": clf.LogLog2Rev,
	"linToLog": clf.LogLinToLog, "logToLin": clf.LogLogToLin,
	"cameraLinToLog": clf.LogCameraLinToLog, "cameraLogToLin": clf.LogCameraLogToLin,
}

type logBuilder struct {
	p    *parser
	line int
	op   *clf.Log
}

func (b *logBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Log{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	ls, ok := logStyleNames[style]
	if !ok {
		return clf.NewError(clf.UnknownStyle, b.p.file, b.line, fmt.Sprintf("unknown Log style %q", style))
	}
	op.Style = ls
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *logBuilder) chars(data []byte, trimmed bool) {}

func (b *logBuilder) child(name string, line int) (builder, bool) {
	if name == "LogParams" {
		return &logParamsBuilder{p: b.p, line: line, op: b.op}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *logBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// logParamsBuilder reads one <LogParams> element, which carries either
// Cineon-style attributes (gamma, refWhite, refBlack, highlight,
// shadow) or OCIO-style ones (base, linSideSlope, ...) but never a mix
// of the two (clf.MixedLogParams).
type logParamsBuilder struct {
	p   *parser
	line int
	op  *clf.Log
}

func (b *logParamsBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)

	_, hasGamma := as.get("gamma")
	_, hasRefWhite := as.get("refWhite")
	_, hasRefBlack := as.get("refBlack")
	_, hasHighlight := as.get("highlight")
	_, hasShadow := as.get("shadow")
	cineonPresent := hasGamma || hasRefWhite || hasRefBlack || hasHighlight || hasShadow

	_, hasBase := as.get("base")
	_, hasLinSlope := as.get("linSideSlope")
	_, hasLinOffset := as.get("linSideOffset")
	_, hasLogSlope := as.get("logSideSlope")
	_, hasLogOffset := as.get("logSideOffset")
	_, hasLinBreak := as.get("linSideBreak")
	_, hasLinearSlope := as.get("linearSlope")
	ocioPresent := hasBase || hasLinSlope || hasLinOffset || hasLogSlope || hasLogOffset || hasLinBreak || hasLinearSlope

	if cineonPresent && ocioPresent {
		return clf.NewError(clf.MixedLogParams, b.p.file, b.line,
			"LogParams mixes Cineon and OCIO attributes in the same element")
	}

	var p clf.OCIOParams
	if cineonPresent {
		// CTFReaderHelper.cpp throws if any of the five Cineon attributes
		// is missing once one of them is present; there is no partial
		// form.
		var c clf.CineonParams
		var err error
		if c.Gamma, err = as.requireFloat("gamma"); err != nil {
			return err
		}
		if c.RefWhite, err = as.requireFloat("refWhite"); err != nil {
			return err
		}
		if c.RefBlack, err = as.requireFloat("refBlack"); err != nil {
			return err
		}
		if c.Highlight, err = as.requireFloat("highlight"); err != nil {
			return err
		}
		if c.Shadow, err = as.requireFloat("shadow"); err != nil {
			return err
		}
		p = clf.CineonToOCIO(c)
	} else {
		var err error
		if p.Base, err = as.float("base", 10); err != nil {
			return err
		}
		if p.LinSideSlope, err = as.float("linSideSlope", 1); err != nil {
			return err
		}
		if p.LinSideOffset, err = as.float("linSideOffset", 0); err != nil {
			return err
		}
		if p.LogSideSlope, err = as.float("logSideSlope", 1); err != nil {
			return err
		}
		if p.LogSideOffset, err = as.float("logSideOffset", 0); err != nil {
			return err
		}
		if hasLinBreak {
			if p.LinSideBreak, err = as.float("linSideBreak", 0); err != nil {
				return err
			}
			p.HasLinSideBreak = true
		}
		if hasLinearSlope {
			if p.LinearSlope, err = as.float("linearSlope", 0); err != nil {
				return err
			}
			p.HasLinearSlope = true
		}
	}
	as.warnUnrecognized()
	b.op.Params = append(b.op.Params, p)
	return nil
}

func (b *logParamsBuilder) chars(data []byte, trimmed bool) {}
func (b *logParamsBuilder) end() error                      { return nil }
