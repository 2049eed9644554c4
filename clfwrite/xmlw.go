/*
NAME
  xmlw.go

DESCRIPTION
  xmlw.go implements a small indenting XML emitter purpose-built for
  CLF/CTF output. A hand-rolled emitter, not encoding/xml.Encoder, is
  used because the writer needs control encoding/xml doesn't expose:
  dialect-specific attribute presence, 9-significant-digit float
  formatting, and dense whitespace-separated array blocks in a specific
  channel order. See DESIGN.md for the full justification.

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
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// attrList is an ordered (key, value) attribute list; a zero-length
// value is skipped on emit so callers can build the full candidate set
// unconditionally and let the writer drop absent optionals.
type attrList [][2]string

func (a attrList) with(key, val string) attrList {
	if val == "" {
		return a
	}
	return append(a, [2]string{key, val})
}

// xmlWriter accumulates an indented CLF/CTF document.
type xmlWriter struct {
	buf    bytes.Buffer
	indent int
	crlf   bool
}

func (w *xmlWriter) nl() {
	if w.crlf {
		w.buf.WriteString("\r\n")
	} else {
		w.buf.WriteByte('\n')
	}
}

func (w *xmlWriter) pad() {
	w.buf.WriteString(strings.Repeat("  ", w.indent))
}

func (w *xmlWriter) raw(s string) {
	w.pad()
	w.buf.WriteString(s)
	w.nl()
}

// open writes a start tag and increases indentation for its children.
func (w *xmlWriter) open(name string, attrs attrList) {
	w.startTag(name, attrs, false)
	w.indent++
}

// selfClose writes a single self-closing tag with no children.
func (w *xmlWriter) selfClose(name string, attrs attrList) {
	w.startTag(name, attrs, true)
}

func (w *xmlWriter) startTag(name string, attrs attrList, selfClose bool) {
	w.pad()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, kv := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(kv[0])
		w.buf.WriteString(`="`)
		xml.EscapeText(&w.buf, []byte(kv[1]))
		w.buf.WriteByte('"')
	}
	if selfClose {
		w.buf.WriteString("/>")
	} else {
		w.buf.WriteByte('>')
	}
	w.nl()
}

// close writes an end tag, decreasing indentation first.
func (w *xmlWriter) close(name string) {
	w.indent--
	w.pad()
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">")
	w.nl()
}

// leaf writes a complete element with attributes and escaped text
// content on one line, e.g. <Description>hello</Description>.
func (w *xmlWriter) leaf(name string, attrs attrList, text string) {
	w.pad()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, kv := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(kv[0])
		w.buf.WriteString(`="`)
		xml.EscapeText(&w.buf, []byte(kv[1]))
		w.buf.WriteByte('"')
	}
	w.buf.WriteByte('>')
	xml.EscapeText(&w.buf, []byte(text))
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">")
	w.nl()
}

// numbers writes a leaf element whose text content is a
// space-separated run of floats, one group of perLine values per
// output line (perLine <= 0 means "all on one line").
func (w *xmlWriter) numbers(name string, attrs attrList, values []float64, perLine int) {
	w.startTag(name, attrs, false)
	w.indent++
	w.pad()
	for i, v := range values {
		if perLine > 0 && i > 0 && i%perLine == 0 {
			w.nl()
			w.pad()
		} else if i > 0 {
			w.buf.WriteByte(' ')
		}
		w.buf.WriteString(formatFloat(v))
	}
	w.nl()
	w.indent--
	w.close(name)
}

// formatFloat renders v with enough significant digits (9) that
// parsing the text back reproduces the same float32 value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 9, 64)
}
