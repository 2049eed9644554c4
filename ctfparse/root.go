/*
NAME
  root.go

DESCRIPTION
  root.go implements the document-root builder. It covers the native
  ProcessList element and, sharing the same CDL sub-element grammar,
  the three ASC CDL dialect roots (ColorDecisionList,
  ColorCorrectionCollection, bare ColorCorrection), each installing its
  own dispatch table at the root.

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
	"github.com/ausocean/clf/version"
)

// rootBuilder is the builder for whichever root tag opened the
// document.
type rootBuilder struct {
	p       *parser
	dialect string
	pl      *clf.ProcessList

	// cdl is populated only when dialect == "ColorCorrection": that root
	// tag *is* a CDL operator rather than a container for one.
	cdl *cdlBuilder

	// seenCDLIDs tracks ColorCorrection ids already closed under a
	// ColorCorrectionCollection root, so a second child reusing an id
	// can be reported as DuplicateID.
	seenCDLIDs map[string]bool
}

func newRootBuilder(p *parser, rootTag string) builder {
	rb := &rootBuilder{p: p, dialect: rootTag}
	if rootTag == "ColorCorrection" {
		rb.cdl = &cdlBuilder{p: p}
	}
	return rb
}

func (r *rootBuilder) start(attrs []attr) error {
	as := newAttrSet(r.p, 0, attrs)

	switch r.dialect {
	case "ProcessList":
		id, err := as.require("id")
		if err != nil {
			return err
		}
		r.pl = &clf.ProcessList{ID: id}
		if name, ok := as.get("name"); ok {
			r.pl.Name = name
		}
		if inv, ok := as.get("inverseOf"); ok {
			r.pl.InverseOf = inv
		}
		if vs, ok := as.get("compCLFversion"); ok {
			v, perr := version.Parse(vs)
			if perr != nil {
				return clf.NewError(clf.InvalidNumber, r.p.file, 0, "compCLFversion is not a valid version")
			}
			r.pl.CLFVersion = v
			r.pl.IsCLF = true
			r.p.isCLF = true
			r.p.fileVersion = version.CLFToCTF(v)
		} else if vs, ok := as.get("version"); ok {
			v, perr := version.Parse(vs)
			if perr != nil {
				return clf.NewError(clf.InvalidNumber, r.p.file, 0, "version is not a valid version")
			}
			r.pl.CTFVersion = v
			r.p.fileVersion = v
		} else {
			r.p.fileVersion = version.MaxCTF
		}
		as.warnUnrecognized()

	case "ColorDecisionList", "ColorCorrectionCollection":
		r.pl = &clf.ProcessList{ID: r.dialect}
		r.p.fileVersion = version.CTF1_7
		as.warnUnrecognized()

	case "ColorCorrection":
		r.pl = &clf.ProcessList{}
		r.p.fileVersion = version.CTF1_7
		if err := r.cdl.start(attrs); err != nil {
			return err
		}
		r.pl.ID = r.cdl.op.ID
	}
	return nil
}

func (r *rootBuilder) chars(data []byte, trimmed bool) {}

func (r *rootBuilder) child(name string, line int) (builder, bool) {
	switch r.dialect {
	case "ProcessList":
		switch name {
		case "Description":
			return &descriptionBuilder{target: &r.pl.Descriptions}, true
		case "Info":
			md := newMetadataBuilder("Info")
			md.onEnd = func(n *clf.FormatMetadata) { r.pl.Info = n }
			return md, true
		case "InputDescriptor":
			return &descriptorBuilder{target: &r.pl.InDescriptor}, true
		case "OutputDescriptor":
			return &descriptorBuilder{target: &r.pl.OutDescriptor}, true
		}
		if factory, ok := operatorFactories[name]; ok {
			return factory(r.p), true
		}
		return nil, false

	case "ColorDecisionList":
		if name == "ColorDecision" {
			return &colorDecisionBuilder{p: r.p}, true
		}
		return nil, false

	case "ColorCorrectionCollection":
		if name == "ColorCorrection" {
			return &cdlBuilder{p: r.p, line: line, ccc: r}, true
		}
		return nil, false

	case "ColorCorrection":
		return r.cdl.child(name, line)
	}
	return nil, false
}

func (r *rootBuilder) end() error {
	if r.dialect == "ColorCorrection" {
		return r.cdl.end()
	}
	return nil
}

// recordCDLID registers id as closed under a ColorCorrectionCollection
// root, returning an error if it was already seen.
func (r *rootBuilder) recordCDLID(id, file string, line int) error {
	if r.seenCDLIDs == nil {
		r.seenCDLIDs = make(map[string]bool)
	}
	if r.seenCDLIDs[id] {
		return clf.NewError(clf.DuplicateID, file, line, fmt.Sprintf("duplicate ColorCorrection id %q", id))
	}
	r.seenCDLIDs[id] = true
	return nil
}

// colorDecisionBuilder is ColorDecisionList's immediate child: a thin
// container whose own child is the CDL-bearing ColorCorrection.
type colorDecisionBuilder struct {
	p *parser
}

func (c *colorDecisionBuilder) start(attrs []attr) error        { return nil }
func (c *colorDecisionBuilder) chars(data []byte, trimmed bool) {}
func (c *colorDecisionBuilder) child(name string, line int) (builder, bool) {
	if name == "ColorCorrection" {
		return &cdlBuilder{p: c.p, line: line}, true
	}
	return nil, false
}
func (c *colorDecisionBuilder) end() error { return nil }

// appendOp is how every leaf operator builder hands its finished
// Operator to the in-progress ProcessList.
func (p *parser) appendOp(op clf.Operator) {
	if p.root != nil && p.root.pl != nil {
		p.root.pl.Ops = append(p.root.pl.Ops, op)
	}
}
