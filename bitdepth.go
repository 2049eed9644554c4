/*
NAME
  bitdepth.go

DESCRIPTION
  bitdepth.go implements the BitDepth tag and its normalization scale.
  Bit depths never clamp; they only describe how stored parameters were
  scaled on disk.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clf

import "strings"

// BitDepth is the declared scaling of an operator's stored parameters.
type BitDepth int

const (
	UnknownBitDepth BitDepth = iota
	UInt8
	UInt10
	UInt12
	UInt16
	F16
	F32
)

// fileTags maps the CLF/CTF attribute spellings to BitDepth values.
var fileTags = map[string]BitDepth{
	"8i":  UInt8,
	"10i": UInt10,
	"12i": UInt12,
	"16i": UInt16,
	"16f": F16,
	"32f": F32,
}

// ParseBitDepth maps a CLF/CTF bit-depth attribute spelling (e.g.
// "10i", "32f") to a BitDepth. It returns UnknownBitDepth, false for
// anything it doesn't recognize; the caller fails MissingAttribute.
func ParseBitDepth(s string) (BitDepth, bool) {
	bd, ok := fileTags[strings.TrimSpace(s)]
	return bd, ok
}

// String formats a BitDepth using its CLF/CTF file spelling.
func (b BitDepth) String() string {
	for s, v := range fileTags {
		if v == b {
			return s
		}
	}
	return "unknown"
}

// Scale returns the normalization scale for a bit depth: the maximum
// representable integer value for integer depths, and 1.0 for
// floating-point depths. Scale never clamps; it only rescales.
func (b BitDepth) Scale() float64 {
	switch b {
	case UInt8:
		return 255.0
	case UInt10:
		return 1023.0
	case UInt12:
		return 4095.0
	case UInt16:
		return 65535.0
	case F16, F32:
		return 1.0
	default:
		return 1.0
	}
}

// IsFloat reports whether b is one of the floating-point depths.
func (b BitDepth) IsFloat() bool { return b == F16 || b == F32 }
