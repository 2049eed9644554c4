/*
NAME
  invert_test.go

DESCRIPTION
  invert_test.go covers the three inversion paths: a monotonic inverse
  Lut1D classified exact, a non-monotonic one that gets a fast-forward
  approximation, and Matrix's SingularMatrix failure mode.

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
	"testing"

	"github.com/ausocean/clf"
)

func monotonicLut(n int) *clf.Lut1D {
	values := make([]float64, n*3)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		values[i*3], values[i*3+1], values[i*3+2] = v, v, v
	}
	return &clf.Lut1D{
		OpBase: clf.OpBase{ID: "l1", Direction: clf.Inverse, InBitDepth: clf.F32, OutBitDepth: clf.F32},
		Array:  clf.Array{Dims: []int{n, 3}, Values: values},
	}
}

func TestLut1DExactWhenMonotonic(t *testing.T) {
	l := monotonicLut(16)
	if err := Lut1D(l); err != nil {
		t.Fatalf("Lut1D: %v", err)
	}
	if !l.Exact {
		t.Error("monotonic LUT should be classified exact")
	}
	if l.FastForward != nil {
		t.Error("exact LUT should not get a fast-forward approximation")
	}
}

func TestLut1DFastForwardWhenNonMonotonic(t *testing.T) {
	n := 16
	values := make([]float64, n*3)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		if i == n/2 {
			v -= 0.5 // introduce a dip
		}
		values[i*3], values[i*3+1], values[i*3+2] = v, v, v
	}
	l := &clf.Lut1D{
		OpBase: clf.OpBase{
			ID: "l2", Direction: clf.Inverse, InBitDepth: clf.F32, OutBitDepth: clf.F32,
		},
		Array:              clf.Array{Dims: []int{n, 3}, Values: values},
		FileOutputBitDepth: clf.UInt12,
	}
	if err := Lut1D(l); err != nil {
		t.Fatalf("Lut1D: %v", err)
	}
	if l.Exact {
		t.Error("non-monotonic LUT should not be classified exact")
	}
	if l.FastForward == nil {
		t.Fatal("non-monotonic LUT should get a fast-forward approximation")
	}
	want := int(clf.UInt12.Scale()) + 1
	if l.FastForward.Length() != want {
		t.Errorf("fast-forward length = %d, want %d", l.FastForward.Length(), want)
	}
}

func TestLut1DFastForwardHalfDomainSize(t *testing.T) {
	n := 4
	values := make([]float64, n*3)
	for i := 0; i < n; i++ {
		v := float64(n-1-i) / float64(n-1) // strictly decreasing: non-monotonic
		values[i*3], values[i*3+1], values[i*3+2] = v, v, v
	}
	l := &clf.Lut1D{
		OpBase: clf.OpBase{
			ID: "l3", Direction: clf.Inverse, InBitDepth: clf.F16, OutBitDepth: clf.F16,
		},
		Array:              clf.Array{Dims: []int{n, 3}, Values: values},
		HalfDomain:         true,
		FileOutputBitDepth: clf.F16,
	}
	if err := Lut1D(l); err != nil {
		t.Fatalf("Lut1D: %v", err)
	}
	if l.FastForward == nil {
		t.Fatal("non-monotonic half-domain LUT should get a fast-forward approximation")
	}
	if l.FastForward.Length() != clf.HalfDomainSize {
		t.Errorf("half-domain fast-forward length = %d, want %d", l.FastForward.Length(), clf.HalfDomainSize)
	}
}

func TestLut1DForwardIsNoOp(t *testing.T) {
	l := monotonicLut(4)
	l.Direction = clf.Forward
	if err := Lut1D(l); err != nil {
		t.Fatalf("Lut1D: %v", err)
	}
	if l.FastForward != nil || l.Exact {
		t.Error("forward LUT should be left untouched")
	}
}

func identityMatrix() *clf.Matrix {
	return &clf.Matrix{
		OpBase:  clf.OpBase{ID: "m1", InBitDepth: clf.F32, OutBitDepth: clf.F32},
		Size:    3,
		Coeffs:  []float64{2, 0, 0, 0, 2, 0, 0, 0, 2},
		Offsets: []float64{1, 1, 1},
	}
}

func TestMatrixInverts(t *testing.T) {
	inv, err := Matrix(identityMatrix())
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if inv.At(0, 0) != 0.5 {
		t.Errorf("inv[0][0] = %v, want 0.5", inv.At(0, 0))
	}
	if inv.Offsets[0] != -0.5 {
		t.Errorf("inv offset[0] = %v, want -0.5", inv.Offsets[0])
	}
}

func TestMatrixSingularFails(t *testing.T) {
	m := &clf.Matrix{
		OpBase:  clf.OpBase{ID: "m2", InBitDepth: clf.F32, OutBitDepth: clf.F32},
		Size:    3,
		Coeffs:  []float64{1, 1, 1, 1, 1, 1, 1, 1, 1},
		Offsets: []float64{0, 0, 0},
	}
	_, err := Matrix(m)
	if k, ok := clf.KindOf(err); !ok || k != clf.SingularMatrix {
		t.Fatalf("err = %v, want SingularMatrix", err)
	}
}
