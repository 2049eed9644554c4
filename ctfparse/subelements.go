/*
NAME
  subelements.go

DESCRIPTION
  subelements.go implements the sub-element readers shared across
  operator types: Description/Info text and metadata, Array and
  IndexMap (the tensor and legacy rescale-map shapes), and
  DynamicParameter. commonChild is the single dispatch point every
  per-operator child() falls back to.

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
	"github.com/ausocean/clf/numeric"
)

// commonChild dispatches the two sub-elements every operator accepts
// regardless of type: Description and DynamicParameter.
func commonChild(p *parser, line int, base *clf.OpBase, name string) (builder, bool) {
	switch name {
	case "Description":
		return &descriptionBuilder{target: &base.Descriptions}, true
	case "DynamicParameter":
		return &dynamicParamBuilder{p: p, line: line, base: base}, true
	}
	return nil, false
}

// --- Description / descriptor text -----------------------------------------

// descriptionBuilder collects verbatim character data (whitespace
// preserved) and appends it to a Descriptions slice on close; a
// ProcessList or operator may carry several.
type descriptionBuilder struct {
	buf    []byte
	target *[]string
}

func (d *descriptionBuilder) isPlain()                         {}
func (d *descriptionBuilder) start(attrs []attr) error         { return nil }
func (d *descriptionBuilder) chars(data []byte, trimmed bool)  { d.buf = append(d.buf, data...) }
func (d *descriptionBuilder) end() error {
	*d.target = append(*d.target, string(d.buf))
	return nil
}

// descriptorBuilder handles the single-valued InputDescriptor and
// OutputDescriptor elements.
type descriptorBuilder struct {
	buf    []byte
	target *string
}

func (d *descriptorBuilder) isPlain()                        {}
func (d *descriptorBuilder) start(attrs []attr) error        { return nil }
func (d *descriptorBuilder) chars(data []byte, trimmed bool) { d.buf = append(d.buf, data...) }
func (d *descriptorBuilder) end() error {
	*d.target = string(d.buf)
	return nil
}

// --- Metadata catch-all ------------------------------------------------------

// metadataBuilder implements the "arbitrary nested XML without
// interpretation" subtree FormatMetadata represents. The parser
// gives any element opened while the stack top is a *metadataBuilder
// the same treatment (parser.go rule 1), so a metadata tree can nest
// arbitrarily deep regardless of tag name.
type metadataBuilder struct {
	node  *clf.FormatMetadata
	buf   []byte
	onEnd func(*clf.FormatMetadata)
}

func newMetadataBuilder(name string) *metadataBuilder {
	return &metadataBuilder{node: clf.NewMetadata(name)}
}

func (m *metadataBuilder) start(attrs []attr) error {
	for _, a := range attrs {
		m.node.SetAttr(a.Key, a.Value)
	}
	return nil
}

func (m *metadataBuilder) chars(data []byte, trimmed bool) { m.buf = append(m.buf, data...) }

func (m *metadataBuilder) end() error {
	m.node.Value = string(m.buf)
	if m.onEnd != nil {
		m.onEnd(m.node)
	}
	return nil
}

// pushChild is called by parser.go's metadata catch-all rule to build
// the next nested level.
func (m *metadataBuilder) pushChild(name string) *metadataBuilder {
	child := newMetadataBuilder(name)
	m.node.AddChild(child.node)
	return child
}

// --- Array --------------------------------------------------------------

// arrayBuilder parses a CLF/CTF <Array dim="..."> element. It performs
// no shape validation itself (Matrix, Lut1D and Lut3D each interpret
// the dim/value-count relationship differently); onEnd receives the
// raw tensor and is responsible for validating and storing it.
type arrayBuilder struct {
	p     *parser
	line  int
	dims  []int
	buf   []byte
	onEnd func(clf.Array) error
}

func (a *arrayBuilder) start(attrs []attr) error {
	as := newAttrSet(a.p, a.line, attrs)
	dimStr, err := as.require("dim")
	if err != nil {
		return err
	}
	dims, err := parseDims(a.p, a.line, dimStr)
	if err != nil {
		return err
	}
	a.dims = dims
	as.warnUnrecognized()
	return nil
}

func (a *arrayBuilder) chars(data []byte, trimmed bool) {
	a.buf = append(a.buf, data...)
	a.buf = append(a.buf, ' ')
}

func (a *arrayBuilder) end() error {
	vals, err := numeric.GetNumbers(a.buf)
	if err != nil {
		return clf.NewError(clf.InvalidNumber, a.p.file, a.line, "Array contains a malformed number")
	}
	return a.onEnd(clf.Array{Dims: a.dims, Values: vals})
}

func parseDims(p *parser, line int, s string) ([]int, error) {
	vals, err := numeric.GetNumbers([]byte(s))
	if err != nil {
		return nil, clf.NewError(clf.ArrayLength, p.file, line, "dim attribute is not a list of numbers")
	}
	dims := make([]int, len(vals))
	for i, v := range vals {
		dims[i] = int(v)
	}
	return dims, nil
}

func parseNumberList(buf []byte) ([]float64, error) {
	vals, err := numeric.GetNumbers(buf)
	if err != nil {
		return nil, err
	}
	return vals, nil
}

// --- IndexMap -------------------------------------------------------------

// indexMapBuilder parses a legacy <IndexMap> element into a sequence
// of (from, to) pairs; onEnd is responsible for materializing the
// prepended Range via clf.IndexMap.ToRange.
type indexMapBuilder struct {
	p     *parser
	line  int
	buf   []byte
	onEnd func(clf.IndexMap) error
}

func (b *indexMapBuilder) start(attrs []attr) error {
	as := newAttrSet(b.p, b.line, attrs)
	as.get("dim") // bookkeeping only: ToRange enforces the exactly-2-entry rule itself.
	as.warnUnrecognized()
	return nil
}

func (b *indexMapBuilder) chars(data []byte, trimmed bool) {
	b.buf = append(b.buf, data...)
	b.buf = append(b.buf, ' ')
}

func (b *indexMapBuilder) end() error {
	var pairs []numeric.IndexPair
	pos := 0
	for {
		pair, next, ok, err := numeric.GetNextIndexPair(b.buf, pos)
		if err != nil {
			return clf.NewError(clf.InvalidNumber, b.p.file, b.line, "IndexMap contains a malformed pair")
		}
		if !ok {
			break
		}
		pairs = append(pairs, pair)
		pos = next
	}
	return b.onEnd(clf.IndexMap{Pairs: pairs})
}

// --- DynamicParameter -------------------------------------------------------

var dynamicParamNames = map[string]clf.DynamicParam{
	"EXPOSURE": clf.DynExposure, "CONTRAST": clf.DynContrast, "GAMMA": clf.DynGamma,
	"PRIMARY": clf.DynGradingPrimary, "RGB_CURVE": clf.DynGradingRGBCurve, "TONE": clf.DynGradingTone,
}

type dynamicParamBuilder struct {
	p    *parser
	line int
	base *clf.OpBase
}

func (d *dynamicParamBuilder) start(attrs []attr) error {
	as := newAttrSet(d.p, d.line, attrs)
	name, err := as.require("name")
	if err != nil {
		return err
	}
	dp, ok := dynamicParamNames[name]
	if !ok {
		if clf.Log != nil {
			clf.Log.Warning("unrecognized DynamicParameter name", "name", name, "line", d.line)
		}
		as.warnUnrecognized()
		return nil
	}
	d.base.SetDynamic(dp)
	as.warnUnrecognized()
	return nil
}

func (d *dynamicParamBuilder) chars(data []byte, trimmed bool) {}
func (d *dynamicParamBuilder) end() error                      { return nil }
