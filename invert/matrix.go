/*
NAME
  matrix.go

DESCRIPTION
  matrix.go implements Matrix's closed-form inverse: build the
  augmented (coeffs | offset) affine matrix, invert it with
  gonum.org/v1/gonum/mat, and fail SingularMatrix when the determinant
  is too close to zero to trust.

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

import (
	"github.com/ausocean/clf"
	"gonum.org/v1/gonum/mat"
)

// singularDetThreshold is how close to zero a determinant must be
// before the matrix is treated as singular.
const singularDetThreshold = 1e-12

// Matrix computes the closed-form inverse of the NxN affine transform
// m (coefficients plus offset vector), returning a new Matrix with
// in/out bit depths swapped and Direction forced to Forward (an
// inverted Matrix is itself a plain forward transform).
func Matrix(m *clf.Matrix) (*clf.Matrix, error) {
	n := m.Size
	aug := mat.NewDense(n+1, n+1, nil)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			aug.Set(r, c, m.At(r, c))
		}
		aug.Set(r, n, m.Offsets[r])
	}
	aug.Set(n, n, 1)

	det := mat.Det(aug)
	if det > -singularDetThreshold && det < singularDetThreshold {
		return nil, clf.NewError(clf.SingularMatrix, "", 0, "Matrix determinant is too close to zero to invert")
	}

	var inv mat.Dense
	if err := inv.Inverse(aug); err != nil {
		return nil, clf.NewError(clf.SingularMatrix, "", 0, "Matrix inversion failed: "+err.Error())
	}

	out := &clf.Matrix{
		OpBase:  m.OpBase.cloneBase(),
		Size:    n,
		Coeffs:  make([]float64, n*n),
		Offsets: make([]float64, n),
	}
	out.InBitDepth, out.OutBitDepth = m.OutBitDepth, m.InBitDepth
	out.Direction = clf.Forward
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.Set(r, c, inv.At(r, c))
		}
		out.Offsets[r] = inv.At(r, n)
	}
	return out, nil
}
