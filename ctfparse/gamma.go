/*
NAME
  gamma.go

DESCRIPTION
  gamma.go implements the Gamma operator reader: style attribute plus
  one <GammaParams> per channel, and the version/dialect gate on the
  4th (alpha) channel.

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
	"github.com/ausocean/clf"
	"github.com/ausocean/clf/version"
)

type gammaBuilder struct {
	p    *parser
	line int
	op   *clf.Gamma
}

func (b *gammaBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	op := &clf.Gamma{}
	if err := parseCommonAttrs(&op.OpBase, as); err != nil {
		return err
	}
	style, err := as.require("style")
	if err != nil {
		return err
	}
	gs, serr := clf.ParseGammaStyle(style)
	if serr != nil {
		return serr
	}
	op.Style = gs
	op.AlphaSupported = !b.p.isCLF && b.p.fileVersion.AtLeast(version.CTF1_8)
	as.warnUnrecognized()
	b.op = op
	return nil
}

func (b *gammaBuilder) chars(data []byte, trimmed bool) {}

func (b *gammaBuilder) child(name string, line int) (builder, bool) {
	if name == "GammaParams" {
		return &gammaParamsBuilder{p: b.p, line: line, op: b.op}, true
	}
	return commonChild(b.p, line, &b.op.OpBase, name)
}

func (b *gammaBuilder) end() error {
	if err := b.op.Validate(); err != nil {
		return err
	}
	b.p.appendOp(b.op)
	return nil
}

// gammaParamsBuilder reads one <GammaParams channel="R|G|B|A" gamma="…"
// offset="…"/> element, appending it to the owning Gamma's Params in
// whatever order the file presents channels.
type gammaParamsBuilder struct {
	p    *parser
	line int
	op   *clf.Gamma
}

func (b *gammaParamsBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	as.get("channel") // channel ordering is positional; the attribute is informational only.
	var p clf.GammaParams
	var err error
	if p.Gamma, err = as.float("gamma", 1); err != nil {
		return err
	}
	if p.Offset, err = as.float("offset", 0); err != nil {
		return err
	}
	as.warnUnrecognized()
	b.op.Params = append(b.op.Params, p)
	return nil
}

func (b *gammaParamsBuilder) chars(data []byte, trimmed bool) {}
func (b *gammaParamsBuilder) end() error                      { return nil }
