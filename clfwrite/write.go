/*
NAME
  write.go

DESCRIPTION
  write.go implements Write, the entry point that serializes a sealed
  clf.ProcessList back to CLF or CTF XML: it picks the lowest version
  able to express every operator present, but never one below the
  version the list was read at, writes CLF or CTF as Options.Dialect
  selects, restores each operator's file-bit-depth-domain values, and
  emits the document.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package clfwrite serializes a clf.ProcessList back to CLF or CTF XML,
// the inverse of ctfparse.Read.
package clfwrite

import (
	"encoding/xml"

	"github.com/ausocean/clf"
)

// Dialect selects which format family Write targets.
type Dialect int

const (
	// DialectAuto picks CLF if every operator present is CLF-legal,
	// falling back to CTF otherwise.
	DialectAuto Dialect = iota
	DialectCLF
	DialectCTF
)

// Options configures one Write call.
type Options struct {
	Dialect Dialect
	// CRLF selects Windows-style line endings; the default is "\n".
	CRLF bool
}

// Write serializes pl to CLF or CTF XML per opts. It fails
// UnsupportedInCLF if Dialect is DialectCLF but pl contains an operator
// with no CLF representation.
func Write(pl *clf.ProcessList, opts Options) ([]byte, error) {
	required := requiredVersion(pl)
	clfErr := checkCLFLegal(pl)

	useCLF := false
	switch opts.Dialect {
	case DialectCLF:
		if clfErr != nil {
			return nil, clfErr
		}
		useCLF = true
	case DialectCTF:
		useCLF = false
	default:
		useCLF = clfErr == nil
	}

	w := &xmlWriter{crlf: opts.CRLF}
	w.raw(`<?xml version="1.0" encoding="UTF-8"?>`)

	rootAttrs := attrList{{"id", pl.ID}}
	rootAttrs = rootAttrs.with("name", pl.Name)
	rootAttrs = rootAttrs.with("inverseOf", pl.InverseOf)
	if useCLF {
		v := clfVersionFor(required)
		rootAttrs = append(rootAttrs, [2]string{"compCLFversion", v.String()})
	} else {
		rootAttrs = append(rootAttrs, [2]string{"version", required.String()})
	}

	w.open("ProcessList", rootAttrs)

	for _, d := range pl.Descriptions {
		w.leaf("Description", nil, d)
	}
	if pl.InDescriptor != "" {
		w.leaf("InputDescriptor", nil, pl.InDescriptor)
	}
	if pl.OutDescriptor != "" {
		w.leaf("OutputDescriptor", nil, pl.OutDescriptor)
	}
	if pl.Info != nil {
		w.writeMetadata(pl.Info)
	}
	if pl.Metadata != nil {
		w.writeMetadata(pl.Metadata)
	}

	for _, op := range pl.Ops {
		if err := w.writeOp(op); err != nil {
			return nil, err
		}
	}

	w.close("ProcessList")

	return w.buf.Bytes(), nil
}

// writeMetadata recursively emits an opaque FormatMetadata subtree,
// reproducing its attribute order and nesting exactly as stored.
func (w *xmlWriter) writeMetadata(m *clf.FormatMetadata) {
	var attrs attrList
	for _, kv := range m.Attributes {
		attrs = append(attrs, kv)
	}
	if len(m.Children) == 0 {
		w.leaf(m.Name, attrs, m.Value)
		return
	}
	w.startTag(m.Name, attrs, false)
	w.indent++
	if m.Value != "" {
		w.pad()
		xml.EscapeText(&w.buf, []byte(m.Value))
		w.nl()
	}
	for _, c := range m.Children {
		w.writeMetadata(c)
	}
	w.indent--
	w.close(m.Name)
}
