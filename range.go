/*
NAME
  range.go

DESCRIPTION
  range.go implements the Range operator: a linear rescale from
  [MinInValue, MaxInValue] to [MinOutValue, MaxOutValue], with optional
  clamping at each end.

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

// Range is the Range operator.
type Range struct {
	OpBase
	MinInValue  float64
	MaxInValue  float64
	MinOutValue float64
	MaxOutValue float64

	clampSet bool // whether min/max were both specified (style affects validation only).
}

func (r *Range) Type() OpType { return OpRange }

// Validate checks that MinInValue <= MaxInValue; Range forbids
// min > max.
func (r *Range) Validate() error {
	if r.MinInValue > r.MaxInValue {
		return NewError(StructuralError, "", 0, "Range minInValue must not exceed maxInValue")
	}
	return nil
}

// Normalize rescales the Range's endpoints from the file's bit-depth
// domain into the 32f domain by dividing by each side's scale.
// IndexMap.ToRange leaves the Range it synthesizes in the raw domain,
// so this same step normalizes that Range too.
func (r *Range) Normalize(inScale, outScale float64) {
	r.MinInValue /= inScale
	r.MaxInValue /= inScale
	r.MinOutValue /= outScale
	r.MaxOutValue /= outScale
}

func (r *Range) Clone() Operator {
	out := *r
	out.OpBase = r.OpBase.cloneBase()
	return &out
}

// Invert returns the closed-form inverse of r: a Range that rescales
// [MinOutValue, MaxOutValue] back to [MinInValue, MaxInValue], with in
// and out bit depths swapped.
func (r *Range) Invert() *Range {
	out := &Range{
		OpBase:      r.OpBase.cloneBase(),
		MinInValue:  r.MinOutValue,
		MaxInValue:  r.MaxOutValue,
		MinOutValue: r.MinInValue,
		MaxOutValue: r.MaxInValue,
	}
	out.InBitDepth, out.OutBitDepth = r.OutBitDepth, r.InBitDepth
	out.Direction = Forward
	return out
}
