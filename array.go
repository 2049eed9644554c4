/*
NAME
  array.go

DESCRIPTION
  array.go implements the dense N-dimensional Array tensor used by
  Matrix, Lut1D and Lut3D operators, including the single documented
  shorthand: a 1-channel 1D-LUT array replicated into three channels.

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

import "fmt"

// Array is a dense N-dimensional tensor of 64-bit floats, as stored by
// a CLF/CTF <Array> element.
type Array struct {
	Dims   []int
	Values []float64
}

// Len returns the product of the declared dims.
func (a Array) Len() int {
	n := 1
	for _, d := range a.Dims {
		n *= d
	}
	return n
}

// Validate checks that the parsed value count agrees with the declared
// dims, applying the one documented exception: a 1D-LUT array declared
// [L, 3] may hold exactly L values. That shape and a declared [L, 1]
// array are the 1-channel shorthand; the caller must call
// ReplicateChannel to expand either into a full [L, 3] array before
// further use.
func (a Array) Validate() error {
	want := a.Len()
	if len(a.Values) == want {
		return nil
	}
	if len(a.Dims) == 2 && a.Dims[1] == 3 && len(a.Values) == a.Dims[0] {
		// Shorthand: L values is an L×1 entry to be replicated to L×3.
		return nil
	}
	return NewError(ArrayLength, "", 0,
		fmt.Sprintf("array declares %d dims totalling %d values, but %d were read", a.Dims, want, len(a.Values)))
}

// NeedsReplication reports whether a is a 1D-LUT array using the
// 1-channel shorthand and must be replicated into 3 channels.
func (a Array) NeedsReplication() bool {
	return len(a.Dims) == 2 && (a.Dims[1] == 1 || a.Dims[1] == 3) && len(a.Values) == a.Dims[0]
}

// ReplicateChannel expands a 1-channel shorthand array (L values) into
// a full L×3 array by repeating each value across R, G and B.
func (a Array) ReplicateChannel() Array {
	if !a.NeedsReplication() {
		return a
	}
	out := make([]float64, 0, a.Dims[0]*3)
	for _, v := range a.Values {
		out = append(out, v, v, v)
	}
	return Array{Dims: []int{a.Dims[0], 3}, Values: out}
}

// Clone returns a deep copy of a.
func (a Array) Clone() Array {
	dims := make([]int, len(a.Dims))
	copy(dims, a.Dims)
	vals := make([]float64, len(a.Values))
	copy(vals, a.Values)
	return Array{Dims: dims, Values: vals}
}

// Scale multiplies every value in a by s, returning a new Array.
func (a Array) Scale(s float64) Array {
	out := a.Clone()
	for i := range out.Values {
		out.Values[i] *= s
	}
	return out
}
