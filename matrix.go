/*
NAME
  matrix.go

DESCRIPTION
  matrix.go implements the Matrix operator: a 3x3 or 3x4 (legacy 4x4 or
  4x5) coefficient matrix plus a separately-stored offset vector.

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

// Matrix is the Matrix operator: an NxN coefficient matrix (N is 3,
// or 4 for legacy pre-CTF-2.0 files with an alpha channel) plus an
// N-length offset vector split out of the array's trailing column
// during read.
type Matrix struct {
	OpBase
	Size    int // 3 or 4.
	Coeffs  []float64 // Size*Size, row-major.
	Offsets []float64 // Size.
}

func (m *Matrix) Type() OpType { return OpMatrix }

// At returns the coefficient at (row, col).
func (m *Matrix) At(row, col int) float64 { return m.Coeffs[row*m.Size+col] }

// Set sets the coefficient at (row, col).
func (m *Matrix) Set(row, col int, v float64) { m.Coeffs[row*m.Size+col] = v }

// Validate checks matrix shape and array-length agreement.
func (m *Matrix) Validate() error {
	if m.Size != 3 && m.Size != 4 {
		return NewError(StructuralError, "", 0, fmt.Sprintf("matrix size must be 3 or 4, got %d", m.Size))
	}
	if len(m.Coeffs) != m.Size*m.Size {
		return NewError(ArrayLength, "", 0,
			fmt.Sprintf("matrix declares size %d but has %d coefficients", m.Size, len(m.Coeffs)))
	}
	if len(m.Offsets) != m.Size {
		return NewError(ArrayLength, "", 0,
			fmt.Sprintf("matrix declares size %d but has %d offsets", m.Size, len(m.Offsets)))
	}
	return nil
}

// Normalize rescales coefficients and offsets so the operator behaves
// as if inBitDepth and outBitDepth were both 32-bit float.
func (m *Matrix) Normalize(inScale, outScale float64) {
	factor := inScale / outScale
	for i := range m.Coeffs {
		m.Coeffs[i] *= factor
	}
	for i := range m.Offsets {
		// Offsets are added in the output domain, so they only rescale
		// by outScale: out_raw = M*in_raw + offset_raw, dividing through
		// by outScale gives M*factor*in_norm + offset_raw/outScale.
		m.Offsets[i] /= outScale
	}
}

func (m *Matrix) Clone() Operator {
	out := &Matrix{OpBase: m.OpBase.cloneBase(), Size: m.Size}
	out.Coeffs = append([]float64(nil), m.Coeffs...)
	out.Offsets = append([]float64(nil), m.Offsets...)
	return out
}

// MatrixFromArray splits an n x (n+1) dense array payload into an n x n
// matrix and an n-length offset vector, the shape used for on-disk
// Matrix arrays.
func MatrixFromArray(a Array) (coeffs, offsets []float64, n int, err error) {
	if len(a.Dims) != 2 {
		return nil, nil, 0, NewError(ArrayLength, "", 0, "matrix array must have 2 dims")
	}
	n = a.Dims[0]
	cols := a.Dims[1]
	if cols != n && cols != n+1 {
		return nil, nil, 0, NewError(ArrayLength, "", 0,
			fmt.Sprintf("matrix array must be NxN or Nx(N+1), got %dx%d", n, cols))
	}
	if len(a.Values) != n*cols {
		return nil, nil, 0, NewError(ArrayLength, "", 0, "matrix array value count disagrees with dims")
	}
	coeffs = make([]float64, n*n)
	offsets = make([]float64, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			coeffs[r*n+c] = a.Values[r*cols+c]
		}
		if cols == n+1 {
			offsets[r] = a.Values[r*cols+n]
		}
	}
	return coeffs, offsets, n, nil
}
