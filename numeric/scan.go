/*
NAME
  scan.go

DESCRIPTION
  scan.go provides whitespace-aware tokenization over CLF/CTF character
  data: locating token boundaries and delimiters ahead of strict number
  parsing.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package numeric provides strict, allocation-free scanning and parsing
// of the numeric text found inside CLF/CTF XML character data: arrays,
// index maps, and scalar attribute values.
package numeric

// isSpace reports whether b is CLF/CTF whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isDelim reports whether b delimits one number token from the next.
// Delimiters are whitespace plus the comma used by some IndexMap and
// array encodings.
func isDelim(b byte) bool {
	return isSpace(b) || b == ','
}

// Trim returns the slice s with leading and trailing whitespace removed.
func Trim(s []byte) []byte {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// FindNextTokenStart returns the offset of the first non-delimiter byte
// in s at or after pos, or len(s) if none exists.
func FindNextTokenStart(s []byte, pos int) int {
	for pos < len(s) && isDelim(s[pos]) {
		pos++
	}
	return pos
}

// FindDelimiter returns the offset of the first delimiter byte in s at
// or after pos, or len(s) if the token runs to the end of the slice.
func FindDelimiter(s []byte, pos int) int {
	for pos < len(s) && !isDelim(s[pos]) {
		pos++
	}
	return pos
}
