/*
NAME
  halfdomain.go

DESCRIPTION
  halfdomain.go handles the half-domain special values (SPEC_FULL.md
  supplemented feature 6): +Inf, -Inf and the NaN bit-pattern range are
  clamped to the nearest finite entry when building a half-domain
  fast-forward LUT, rather than sampled as ordinary float32 values.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package invert

import "github.com/ausocean/clf"

// clampHalfDomainIndex maps a half-domain index that denotes +Inf,
// -Inf or NaN onto the nearest finite index, so fast-forward
// construction never has to evaluate invertSample at a non-finite
// input.
func clampHalfDomainIndex(idx int) int {
	switch {
	case idx == clf.HalfDomainPosInf:
		return idx - 1
	case idx == clf.HalfDomainNegInf:
		return idx - 1
	case clf.IsHalfDomainNaN(idx):
		if idx < 32768 {
			return clf.HalfDomainPosInf - 1
		}
		return clf.HalfDomainNegInf - 1
	default:
		return idx
	}
}
