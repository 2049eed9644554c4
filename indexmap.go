/*
NAME
  indexmap.go

DESCRIPTION
  indexmap.go implements the legacy IndexMap element: a sequence of
  (fromValue @ toIndex) pairs that the reader materializes as a Range
  operator prepended to a LUT.

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

import "github.com/ausocean/clf/numeric"

// IndexMap is a sequence of (fromValue @ toIndex) pairs attached to a
// Lut1D or Lut3D in legacy (CLF <= 2.0) files.
type IndexMap struct {
	Pairs []numeric.IndexPair
}

// ToRange materializes a 2-entry IndexMap into the Range operator the
// reader prepends before its owning LUT, rescaling [fromLo, fromHi] to
// [0, 1]. It fails if the map does not have exactly 2 entries, which is
// the only shape the format allows to convert.
func (im IndexMap) ToRange(id string, inBD, outBD BitDepth) (*Range, error) {
	if len(im.Pairs) != 2 {
		return nil, NewError(IndexMapMisuse, "", 0, "IndexMap must have exactly 2 entries to materialize a Range")
	}
	lo, hi := im.Pairs[0], im.Pairs[1]
	// Values are left in raw file-bit-depth domain here, the same
	// convention a plain parsed Range's min/max attributes use; the
	// assemble pass applies Range.Normalize uniformly afterwards, so
	// dividing here too would rescale twice.
	return &Range{
		OpBase:      OpBase{ID: id + "-indexmap-range", InBitDepth: inBD, OutBitDepth: outBD},
		MinInValue:  lo.From,
		MaxInValue:  hi.From,
		MinOutValue: lo.To,
		MaxOutValue: hi.To,
		clampSet:    true,
	}, nil
}
