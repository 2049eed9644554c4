/*
NAME
  element.go

DESCRIPTION
  element.go implements the element stack that drives CLF/CTF parsing:
  each entry is a tagged element of kind Container, Plain or Dummy,
  carrying a parent pointer and source location, mirroring the
  bytescanner/lexer stack discipline codec/codecutil.Lex uses to walk
  a byte stream one token at a time.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ctfparse implements the CLF/CTF element-stack parser: it
// drives a clf.EventSource, builds one clf.Operator per recognized
// element, and hands the assembled clf.ProcessList to the
// pipeline-assembly checks in the clf package.
package ctfparse

// elemKind distinguishes the three shapes a stack entry can take.
type elemKind int

const (
	// Container holds other elements (ProcessList, a LUT, a grading
	// bundle).
	Container elemKind = iota
	// Plain holds only character data (Description, a curve's raw
	// number list).
	Plain
	// Dummy records a recognized-but-misplaced or unknown tag and
	// absorbs its subtree so parsing can continue.
	Dummy
)

// dummyReason distinguishes the two ways a tag can end up Dummy.
type dummyReason int

const (
	reasonUnknown dummyReason = iota
	reasonMisplaced
)

// builder is the behaviour a pushed element supplies: parse its
// attributes, accumulate character data, and finalize on close. Every
// concrete reader (Matrix, Lut1D, Array, Description, ...)
// implements builder.
type builder interface {
	// start parses attrs into the builder's fields. Called immediately
	// after the element is pushed.
	start(attrs []attr) error
	// chars appends character data. trimmed reports whether the caller
	// already trimmed leading/trailing whitespace (false for
	// Description and metadata, which preserve it verbatim).
	chars(data []byte, trimmed bool)
	// end finalizes the builder's fields once its closing tag is seen,
	// typically invoking the resulting operator's Validate.
	end() error
}

// attr is a local alias of clf.Attr's shape so builder implementations
// don't need to import clf just to spell the attribute type; defined
// to match github.com/ausocean/clf.Attr field-for-field and converted
// at the event-loop boundary.
type attr struct {
	Key, Value string
}

// stackElem is one entry on the element stack.
type stackElem struct {
	kind   elemKind
	name   string
	line   int
	parent *stackElem
	reason dummyReason // meaningful only when kind == Dummy
	b      builder     // nil for Dummy
	depth  int         // Dummy bookkeeping: nesting depth of same-named descendants, for absorbing a subtree
}

// stack is the parser's element stack.
type stack struct {
	top *stackElem
}

func (s *stack) push(e *stackElem) {
	e.parent = s.top
	s.top = e
}

func (s *stack) pop() *stackElem {
	e := s.top
	if e != nil {
		s.top = e.parent
	}
	return e
}

func (s *stack) empty() bool { return s.top == nil }
