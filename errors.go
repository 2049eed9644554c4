/*
NAME
  errors.go

DESCRIPTION
  errors.go implements the CLF/CTF error taxonomy: every failure that
  can abort a parse, normalize, or invert step carries a Kind plus the
  file/line context that let a caller reproduce
  "Error parsing CTF/CLF file (<path>). Error is: <message>. At line (<line>)".

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package clf implements the Academy/ASC Common LUT Format (CLF) and
// Color Transform Format (CTF) operator data model: the typed,
// normalized ProcessList that the parser builds and the writer and
// evaluator consume.
package clf

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of a CLF/CTF failure.
type Kind int

const (
	_ Kind = iota
	TagMismatch
	UnclosedElement
	UnknownElement
	MisplacedElement
	MissingAttribute
	UnknownStyle
	UnsupportedOperator
	VersionConflict
	ArrayLength
	IndexMapMisuse
	MixedLogParams
	BitDepthMismatch
	SingularMatrix
	InvalidNumber
	Cancelled
	StructuralError
	NoProcessList
	EmptyProcessList
	UnsupportedInCLF
	InvalidCubeSize
	DuplicateID
)

var kindNames = map[Kind]string{
	TagMismatch:         "TagMismatch",
	UnclosedElement:     "UnclosedElement",
	UnknownElement:      "UnknownElement",
	MisplacedElement:    "MisplacedElement",
	MissingAttribute:    "MissingAttribute",
	UnknownStyle:        "UnknownStyle",
	UnsupportedOperator: "UnsupportedOperator",
	VersionConflict:     "VersionConflict",
	ArrayLength:         "ArrayLength",
	IndexMapMisuse:      "IndexMapMisuse",
	MixedLogParams:      "MixedLogParams",
	BitDepthMismatch:    "BitDepthMismatch",
	SingularMatrix:      "SingularMatrix",
	InvalidNumber:       "InvalidNumber",
	Cancelled:           "Cancelled",
	StructuralError:     "StructuralError",
	NoProcessList:       "NoProcessList",
	EmptyProcessList:    "EmptyProcessList",
	UnsupportedInCLF:    "UnsupportedInCLF",
	InvalidCubeSize:     "InvalidCubeSize",
	DuplicateID:         "DuplicateID",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseError is the single error type returned by every failing
// operation in this module. It always carries enough context to
// reproduce the user-visible failure format.
type ParseError struct {
	Kind  Kind
	File  string
	Line  int
	Msg   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error parsing CTF/CLF file (%s). Error is: %s. At line (%d)", e.File, e.Msg, e.Line)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As and
// github.com/pkg/errors.Cause both see through a ParseError.
func (e *ParseError) Unwrap() error { return e.Cause }

// NewError constructs a ParseError with no wrapped cause.
func NewError(kind Kind, file string, line int, msg string) *ParseError {
	return &ParseError{Kind: kind, File: file, Line: line, Msg: msg}
}

// WrapError constructs a ParseError wrapping cause with additional
// (file, line) context, in the style of errors.Wrap used throughout
// this module for contextualizing lower-level failures.
func WrapError(kind Kind, file string, line int, cause error, msg string) *ParseError {
	return &ParseError{Kind: kind, File: file, Line: line, Msg: msg, Cause: errors.Wrap(cause, msg)}
}

// KindOf reports the Kind of err if it is (or wraps) a *ParseError, and
// ok=false otherwise.
func KindOf(err error) (k Kind, ok bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
