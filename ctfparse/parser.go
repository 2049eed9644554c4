/*
NAME
  parser.go

DESCRIPTION
  parser.go drives a clf.EventSource through the element-stack
  dispatch rules: it decides, for each StartElement, whether to push
  a Container, Plain or Dummy entry, and on EndElement/CharData routes
  to the popped/top builder. Read is the package's single entry point.

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

// ReadOptions configures one Read call.
type ReadOptions struct {
	// FileName is attached to every ParseError for diagnostics; it need
	// not correspond to a real path.
	FileName string
}

// rootNames are the four tags the parser recognizes as the document
// root: the native ProcessList plus the three ASC CDL dialect roots
// sharing the CDL sub-element grammar.
var rootNames = map[string]bool{
	"ProcessList":             true,
	"ColorDecisionList":       true,
	"ColorCorrectionCollection": true,
	"ColorCorrection":          true,
}

// knownElementNames lists every tag the parser assigns meaning to
// somewhere, used to tell an unknown tag (reasonUnknown) apart from a
// recognized tag used in the wrong place (reasonMisplaced).
var knownElementNames = map[string]bool{
	"ProcessList": true, "ColorDecisionList": true, "ColorCorrectionCollection": true,
	"ColorCorrection": true, "ColorDecision": true,
	"Description": true, "Info": true, "InputDescriptor": true, "OutputDescriptor": true,
	"Matrix": true, "Lut1D": true, "InvLut1D": true, "Lut3D": true, "InvLut3D": true,
	"Range": true, "CDL": true, "Log": true, "Gamma": true, "ExposureContrast": true,
	"FixedFunction": true, "Function": true, "GradingPrimary": true, "GradingRGBCurve": true,
	"GradingTone": true, "Reference": true,
	"Array": true, "IndexMap": true, "LogParams": true, "ECParams": true,
	"SOPNode": true, "SatNode": true, "Slope": true, "Offset": true, "Power": true, "Saturation": true,
	"Brightness": true, "Contrast": true, "Pivot": true,
	"Blacks": true, "Shadows": true, "Midtones": true, "Highlights": true, "Whites": true, "SContrast": true,
	"RedCurve": true, "GreenCurve": true, "BlueCurve": true, "MasterCurve": true, "ControlPoints": true, "Slopes": true,
	"DynamicParameter": true, "Params": true,
}

// operatorFactories maps a ProcessList-level element name to a
// constructor for its builder. Each name has the same builder for every
// file version and dialect: the constructors make no version or dialect
// check, and no operator is rejected for the dialect it appears in.
var operatorFactories = map[string]func(p *parser) builder{
	"Matrix":           func(p *parser) builder { return &matrixBuilder{p: p} },
	"Lut1D":            func(p *parser) builder { return &lutBuilder{p: p, is3D: false} },
	"InvLut1D":         func(p *parser) builder { return &lutBuilder{p: p, is3D: false, inverse: true} },
	"Lut3D":            func(p *parser) builder { return &lutBuilder{p: p, is3D: true} },
	"InvLut3D":         func(p *parser) builder { return &lutBuilder{p: p, is3D: true, inverse: true} },
	"Range":            func(p *parser) builder { return &rangeBuilder{p: p} },
	"CDL":              func(p *parser) builder { return &cdlBuilder{p: p} },
	"Log":              func(p *parser) builder { return &logBuilder{p: p} },
	"Gamma":            func(p *parser) builder { return &gammaBuilder{p: p} },
	"ExposureContrast": func(p *parser) builder { return &ecBuilder{p: p} },
	"FixedFunction":    func(p *parser) builder { return &fixedFunctionBuilder{p: p} },
	"Function":         func(p *parser) builder { return &functionBuilder{p: p} },
	"GradingPrimary":   func(p *parser) builder { return &gradingPrimaryBuilder{p: p} },
	"GradingRGBCurve":  func(p *parser) builder { return &gradingRGBCurveBuilder{p: p} },
	"GradingTone":      func(p *parser) builder { return &gradingToneBuilder{p: p} },
	"Reference":        func(p *parser) builder { return &referenceBuilder{p: p} },
}

// childDispatcher is implemented by builders that accept sub-elements;
// it returns the child builder to push, or ok=false for "not mine" (the
// parser then decides Dummy vs operator-table lookup).
type childDispatcher interface {
	child(name string, line int) (builder, bool)
}

// parser holds the element stack and the in-progress ProcessList for
// one Read call.
type parser struct {
	file  string
	stack stack

	pl      *clf.ProcessList
	root    *rootBuilder
	opened  bool // a root element has been seen
	rootTag string

	fileVersion version.Version
	isCLF       bool
}

// Read parses data with the events produced by src, returning the
// assembled, normalized and sealed ProcessList.
func Read(data []byte, src clf.EventSourceFunc, opts ReadOptions) (*clf.ProcessList, error) {
	es, err := src(data)
	if err != nil {
		return nil, clf.WrapError(clf.StructuralError, opts.FileName, 0, err, "failed to open event source")
	}

	p := &parser{file: opts.FileName}

	for {
		ev, ok, err := es.Next()
		if err != nil {
			return nil, clf.WrapError(clf.StructuralError, p.file, 0, err, "event source error")
		}
		if !ok {
			break
		}
		switch ev.Kind {
		case clf.StartElementEvent:
			if err := p.handleStart(ev); err != nil {
				return nil, err
			}
		case clf.EndElementEvent:
			if err := p.handleEnd(ev); err != nil {
				return nil, err
			}
		case clf.CharsEvent:
			p.handleChars(ev)
		}
	}

	if !p.stack.empty() {
		return nil, clf.NewError(clf.UnclosedElement, p.file, 0, "input ended with unclosed elements on the stack")
	}
	if p.pl == nil {
		return nil, clf.NewError(clf.NoProcessList, p.file, 0, "no ProcessList (or CDL dialect root) was found")
	}
	if len(p.pl.Ops) == 0 {
		return nil, clf.NewError(clf.EmptyProcessList, p.file, 0, "ProcessList contains no operators")
	}

	return assemble(p.pl, p.file)
}

func toAttrs(src []clf.Attr) []attr {
	out := make([]attr, len(src))
	for i, a := range src {
		out[i] = attr{Key: a.Key, Value: a.Value}
	}
	return out
}

func (p *parser) handleStart(ev clf.XMLEvent) error {
	// Rule 1: metadata is a catch-all subtree; any element opened
	// inside one is itself a metadata child, regardless of name.
	if top := p.stack.top; top != nil {
		if md, ok := top.b.(*metadataBuilder); ok {
			child := md.pushChild(ev.Name)
			e := &stackElem{kind: Container, name: ev.Name, line: ev.Line, b: child}
			p.stack.push(e)
			return child.start(toAttrs(ev.Attrs))
		}
	}

	// Rule 2: the document root.
	if p.stack.empty() && rootNames[ev.Name] {
		if p.opened {
			p.stack.push(&stackElem{kind: Dummy, name: ev.Name, line: ev.Line, reason: reasonMisplaced})
			return nil
		}
		p.opened = true
		p.rootTag = ev.Name
		b := newRootBuilder(p, ev.Name)
		p.root = b.(*rootBuilder)
		e := &stackElem{kind: Container, name: ev.Name, line: ev.Line, b: b}
		p.stack.push(e)
		return b.start(toAttrs(ev.Attrs))
	}

	// Rule 3: consult the current top's child dispatcher.
	top := p.stack.top
	if top == nil {
		p.stack.push(&stackElem{kind: Dummy, name: ev.Name, line: ev.Line, reason: reasonUnknown})
		return nil
	}
	if top.kind == Dummy {
		// Absorb the whole subtree under a Dummy: each nested element
		// gets its own Dummy entry, which its matching EndElement pops.
		p.stack.push(&stackElem{kind: Dummy, name: ev.Name, line: ev.Line, reason: top.reason})
		return nil
	}

	if cd, ok := top.b.(childDispatcher); ok {
		if b, ok := cd.child(ev.Name, ev.Line); ok {
			kind := Container
			if _, isPlain := b.(plainBuilder); isPlain {
				kind = Plain
			}
			e := &stackElem{kind: kind, name: ev.Name, line: ev.Line, b: b}
			p.stack.push(e)
			return b.start(toAttrs(ev.Attrs))
		}
	}

	reason := reasonUnknown
	if knownElementNames[ev.Name] {
		reason = reasonMisplaced
	}
	p.stack.push(&stackElem{kind: Dummy, name: ev.Name, line: ev.Line, reason: reason})
	return nil
}

// plainBuilder marks a builder as holding only character data, so the
// parser tags its stack entry Plain instead of Container.
type plainBuilder interface {
	isPlain()
}

func (p *parser) handleEnd(ev clf.XMLEvent) error {
	top := p.stack.top
	if top == nil || top.name != ev.Name {
		return clf.NewError(clf.TagMismatch, p.file, ev.Line,
			"closing tag does not match the currently open element")
	}
	p.stack.pop()
	if top.kind == Dummy {
		return nil
	}
	if err := top.b.end(); err != nil {
		return err
	}
	if pl, ok := top.b.(*rootBuilder); ok {
		p.pl = pl.pl
	}
	return nil
}

func (p *parser) handleChars(ev clf.XMLEvent) {
	top := p.stack.top
	if top == nil || top.kind == Dummy {
		return
	}
	if _, ok := top.b.(*metadataBuilder); ok {
		top.b.chars(ev.Chars, false)
		return
	}
	trimmed := trimChars(top.name, ev.Chars)
	top.b.chars(trimmed, top.name != "Description")
}

// trimChars applies the whitespace rule: Description and
// metadata preserve leading/trailing whitespace verbatim; every other
// element's character data is trimmed before being handed to the
// builder (which is expected to parse numbers from it).
func trimChars(name string, data []byte) []byte {
	switch name {
	case "Description":
		return data
	default:
		return trimSpace(data)
	}
}

func trimSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isWS(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isWS(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isWS(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
