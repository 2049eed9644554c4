/*
NAME
  parse.go

DESCRIPTION
  parse.go implements strict number parsing for CLF/CTF text content:
  decimal, scientific, hex-float, inf/nan, and delimited sequences of
  the above. Failures report an offset, not a formatted message; the
  caller attaches file/line context.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package numeric

import (
	"math"
	"strconv"
)

// ErrKind identifies the category of a numeric scanning failure.
type ErrKind int

const (
	_ ErrKind = iota
	NotANumber
	TrailingGarbage
	Overflow
)

func (k ErrKind) String() string {
	switch k {
	case NotANumber:
		return "NotANumber"
	case TrailingGarbage:
		return "TrailingGarbage"
	case Overflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Error reports a numeric parse failure at a byte offset into the
// scanned slice. It carries no formatted message by design; callers
// that need file/line context format one from Kind and Offset.
type Error struct {
	Kind   ErrKind
	Offset int
}

func (e *Error) Error() string { return e.Kind.String() }

// ParseFloat64 parses a float64 from s[start:end], accepting decimal,
// scientific, hex-float and inf/nan spellings (case-insensitive, signed).
// It fails with NotANumber if no digits can be consumed and
// TrailingGarbage if characters remain before end once a valid number
// has been read.
func ParseFloat64(s []byte, start, end int) (float64, error) {
	if start >= end {
		return 0, &Error{Kind: NotANumber, Offset: start}
	}
	tok := s[start:end]
	v, n, ok := scanFloat(tok)
	if !ok {
		return 0, &Error{Kind: NotANumber, Offset: start}
	}
	if n != len(tok) {
		return 0, &Error{Kind: TrailingGarbage, Offset: start + n}
	}
	return v, nil
}

// ParseInt64 parses a signed integer from s[start:end]. It fails with
// Overflow if the parsed value cannot be represented exactly as an
// int64 (e.g. a value with a fractional component, or too large).
func ParseInt64(s []byte, start, end int) (int64, error) {
	f, err := ParseFloat64(s, start, end)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, &Error{Kind: Overflow, Offset: start}
	}
	return int64(f), nil
}

// scanFloat parses the token at the start of tok, up to the first
// delimiter, returning its value and length in bytes; it fails if that
// whole token is not a number. strconv.ParseFloat accepts
// decimal, scientific, hex-float, inf/infinity and nan (all
// case-insensitive, optionally signed), so we delegate to it after
// isolating the token's extent by delimiter.
func scanFloat(tok []byte) (float64, int, bool) {
	end := FindDelimiter(tok, 0)
	if end == 0 {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(string(tok[:end]), 64)
	if err != nil {
		return 0, 0, false
	}
	return v, end, true
}

// GetNumbers parses all delimited float64 tokens in s, returning the
// empty slice (not an error) for all-whitespace input.
func GetNumbers(s []byte) ([]float64, error) {
	var out []float64
	pos := 0
	for {
		pos = FindNextTokenStart(s, pos)
		if pos >= len(s) {
			return out, nil
		}
		end := FindDelimiter(s, pos)
		v, err := ParseFloat64(s, pos, end)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		pos = end
	}
}

// GetNextNumber parses the next float64 token in s starting at or
// after pos, returning the value and the offset immediately following
// the consumed token. It returns ok=false if no further token exists.
func GetNextNumber(s []byte, pos int) (v float64, next int, ok bool, err error) {
	pos = FindNextTokenStart(s, pos)
	if pos >= len(s) {
		return 0, pos, false, nil
	}
	end := FindDelimiter(s, pos)
	v, err = ParseFloat64(s, pos, end)
	if err != nil {
		return 0, pos, false, err
	}
	return v, end, true, nil
}

// IndexPair is one "<from>@<to>" token of an IndexMap.
type IndexPair struct {
	From float64
	To   float64
}

// GetNextIndexPair reads one IndexMap token of the form
// "<number> @ <number>" (whitespace optional around '@') starting at
// or after pos, returning the pair and the offset following it.
func GetNextIndexPair(s []byte, pos int) (pair IndexPair, next int, ok bool, err error) {
	pos = FindNextTokenStart(s, pos)
	if pos >= len(s) {
		return IndexPair{}, pos, false, nil
	}

	// The "from" token runs up to '@', which may follow it directly or
	// after whitespace; that whitespace is trimmed off below.
	atIdx := -1
	for i := pos; i < len(s); i++ {
		if s[i] == '@' {
			atIdx = i
			break
		}
		if isDelim(s[i]) && i > pos {
			j := i
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && s[j] == '@' {
				atIdx = j
			}
			break
		}
	}
	if atIdx < 0 {
		return IndexPair{}, pos, false, &Error{Kind: NotANumber, Offset: pos}
	}

	fromEnd := atIdx
	for fromEnd > pos && isSpace(s[fromEnd-1]) {
		fromEnd--
	}
	from, err := ParseFloat64(s, pos, fromEnd)
	if err != nil {
		return IndexPair{}, pos, false, err
	}

	toStart := FindNextTokenStart(s, atIdx+1)
	toEnd := FindDelimiter(s, toStart)
	to, err := ParseFloat64(s, toStart, toEnd)
	if err != nil {
		return IndexPair{}, pos, false, err
	}

	return IndexPair{From: from, To: to}, toEnd, true, nil
}
