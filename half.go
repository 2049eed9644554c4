/*
NAME
  half.go

DESCRIPTION
  half.go implements IEEE-754 16-bit half-float <-> float32 conversion,
  used by half-domain Lut1D entries (rawHalfs reinterpretation and
  half-domain indexing). No example in the corpus implements a binary
  floating-point codec at this level, so this follows the standard
  IEEE-754 binary16 layout directly rather than reaching for a library.

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

import "math"

// HalfToFloat32 converts a 16-bit half-float bit pattern to a float32.
func HalfToFloat32(bits uint16) float32 {
	sign := uint32(bits>>15) & 0x1
	exp := uint32(bits>>10) & 0x1f
	frac := uint32(bits) & 0x3ff

	var outExp, outFrac uint32
	switch {
	case exp == 0 && frac == 0: // zero
		outExp, outFrac = 0, 0
	case exp == 0: // subnormal half -> normal float32
		e := 0
		f := frac
		for f&0x400 == 0 {
			f <<= 1
			e--
		}
		f &= 0x3ff
		outExp = uint32(int32(127-15+1) + int32(e))
		outFrac = f << 13
	case exp == 0x1f: // inf/nan
		outExp = 0xff
		outFrac = frac << 13
	default:
		outExp = exp - 15 + 127
		outFrac = frac << 13
	}

	bits32 := sign<<31 | outExp<<23 | outFrac
	return math.Float32frombits(bits32)
}

// Float32ToHalf converts a float32 to its nearest 16-bit half-float bit
// pattern, rounding to nearest-even and saturating overflow to
// infinity, matching the CLF/CTF rawHalfs encoding this reader accepts.
func Float32ToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	frac := bits & 0x7fffff

	switch {
	case ((bits >> 23) & 0xff) == 0xff: // inf/nan
		if frac != 0 {
			return sign | 0x7e00 // quiet NaN
		}
		return sign | 0x7c00
	case exp >= 0x1f: // overflow -> inf
		return sign | 0x7c00
	case exp <= 0: // subnormal or underflow to zero
		if exp < -10 {
			return sign
		}
		frac |= 0x800000
		shift := uint(14 - exp)
		half := uint16(frac >> shift)
		rem := frac & (uint32(1)<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || (rem == halfway && half&1 != 0) {
			half++
		}
		return sign | half
	default:
		half := uint16(exp)<<10 | uint16(frac>>13)
		rem := frac & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && half&1 != 0) {
			half++
		}
		return sign | half
	}
}

// HalfDomainSize is the fixed entry count of a half-domain Lut1D: one
// entry per possible 16-bit half-float bit pattern.
const HalfDomainSize = 65536

// Half-domain special indices.
const (
	HalfDomainPosInf = 31744
	HalfDomainNegInf = 64512
)

// IsHalfDomainNaN reports whether idx is one of the half-domain bit
// patterns representing NaN.
func IsHalfDomainNaN(idx int) bool {
	return (idx >= 31745 && idx <= 32767) || (idx >= 64513 && idx <= 65535)
}
