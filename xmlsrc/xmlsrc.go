/*
NAME
  xmlsrc.go

DESCRIPTION
  xmlsrc.go provides the reference implementation of the clf.EventSource
  collaborator, built on the standard library's encoding/xml decoder.
  This is an example collaborator, analogous to how codec/jpeg is one
  concrete codec a revid pipeline can plug in: the clf core itself
  never imports encoding/xml.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xmlsrc implements clf.EventSourceFunc over encoding/xml,
// sniffing and stripping a UTF-8 BOM before decoding (CLF/CTF files in
// the wild are sometimes authored by Windows tools that emit one).
package xmlsrc

import (
	"bytes"
	"encoding/xml"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ausocean/clf"
)

// New implements clf.EventSourceFunc.
func New(data []byte) (clf.EventSource, error) {
	data = stripBOM(data)
	dec := xml.NewDecoder(bytes.NewReader(data))
	return &source{raw: data, dec: dec}, nil
}

// stripBOM removes a leading UTF-8 byte-order-mark, if present.
// unicode.UTF8BOM's decoder strips a BOM when found and passes the
// bytes through unchanged otherwise, so this is safe on plain UTF-8
// documents too.
func stripBOM(data []byte) []byte {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return data
	}
	return out
}

type source struct {
	raw []byte
	dec *xml.Decoder
}

func (s *source) Next() (clf.XMLEvent, bool, error) {
	// RawToken leaves start/end tag matching to the parser, which reports
	// TagMismatch and UnclosedElement itself.
	tok, err := s.dec.RawToken()
	if err == io.EOF {
		return clf.XMLEvent{}, false, nil
	}
	if err != nil {
		return clf.XMLEvent{}, false, err
	}

	line := s.lineAt(s.dec.InputOffset())

	switch t := tok.(type) {
	case xml.StartElement:
		attrs := make([]clf.Attr, 0, len(t.Attr))
		for _, a := range t.Attr {
			attrs = append(attrs, clf.Attr{Key: a.Name.Local, Value: a.Value})
		}
		return clf.XMLEvent{Kind: clf.StartElementEvent, Name: t.Name.Local, Attrs: attrs, Line: line}, true, nil
	case xml.EndElement:
		return clf.XMLEvent{Kind: clf.EndElementEvent, Name: t.Name.Local, Line: line}, true, nil
	case xml.CharData:
		return clf.XMLEvent{Kind: clf.CharsEvent, Chars: []byte(t), Line: line}, true, nil
	default:
		// Comments, processing instructions, directives: skip silently
		// and fetch the next token.
		return s.Next()
	}
}

// lineAt returns the 1-based line number of the given byte offset into
// the original (BOM-stripped) document: 1 + count('\n' in
// bytes[0..offset]).
func (s *source) lineAt(offset int64) int {
	if offset > int64(len(s.raw)) {
		offset = int64(len(s.raw))
	}
	return 1 + bytes.Count(s.raw[:offset], []byte{'\n'})
}
