package clf

import "testing"

func TestMatrixFromArray(t *testing.T) {
	a := Array{Dims: []int{3, 4}, Values: []float64{
		1, 0, 0, 0.1,
		0, 1, 0, 0.2,
		0, 0, 1, 0.3,
	}}
	coeffs, offsets, n, err := MatrixFromArray(a)
	if err != nil {
		t.Fatalf("MatrixFromArray: %v", err)
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
	if len(coeffs) != 9 || len(offsets) != 3 {
		t.Fatalf("unexpected shapes: %d coeffs, %d offsets", len(coeffs), len(offsets))
	}
	if offsets[1] != 0.2 {
		t.Errorf("offsets[1] = %v, want 0.2", offsets[1])
	}
}

func TestMatrixIdentityEvaluatesUnchanged(t *testing.T) {
	m := &Matrix{
		OpBase:  OpBase{ID: "m", InBitDepth: F32, OutBitDepth: F32},
		Size:    3,
		Coeffs:  []float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Offsets: []float64{0, 0, 0},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	px := [3]float64{0.5, 0.25, 0.75}
	var out [3]float64
	for r := 0; r < 3; r++ {
		v := m.Offsets[r]
		for c := 0; c < 3; c++ {
			v += m.At(r, c) * px[c]
		}
		out[r] = v
	}
	if out != px {
		t.Errorf("identity matrix changed pixel: got %v, want %v", out, px)
	}
}

func TestRangeValidate(t *testing.T) {
	r := &Range{MinInValue: 0.5, MaxInValue: 0.1}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for minInValue > maxInValue")
	}
}

func TestRangeInvert(t *testing.T) {
	r := &Range{
		OpBase:      OpBase{InBitDepth: UInt10, OutBitDepth: F32},
		MinInValue:  64.0 / 1023.0,
		MaxInValue:  940.0 / 1023.0,
		MinOutValue: 0,
		MaxOutValue: 1,
	}
	inv := r.Invert()
	if inv.InBitDepth != F32 || inv.OutBitDepth != UInt10 {
		t.Errorf("Invert did not swap bit depths: %+v", inv.OpBase)
	}
	if inv.MinInValue != 0 || inv.MaxInValue != 1 {
		t.Errorf("Invert did not swap endpoints: %+v", inv)
	}
}

func TestArrayReplication(t *testing.T) {
	a := Array{Dims: []int{4, 3}, Values: []float64{0, 0.25, 0.5, 1}}
	if !a.NeedsReplication() {
		t.Fatal("expected shorthand array to need replication")
	}
	rep := a.ReplicateChannel()
	if len(rep.Values) != 12 {
		t.Fatalf("replicated array has %d values, want 12", len(rep.Values))
	}
	if rep.Values[3] != 0.25 || rep.Values[4] != 0.25 || rep.Values[5] != 0.25 {
		t.Errorf("replication did not repeat value across channels: %v", rep.Values[3:6])
	}
}

func TestLut1DHalfDomainValidate(t *testing.T) {
	l := &Lut1D{
		OpBase:     OpBase{InBitDepth: F16, OutBitDepth: F32},
		Array:      Array{Dims: []int{100, 3}, Values: make([]float64, 300)},
		HalfDomain: true,
	}
	if err := l.Validate(); err == nil {
		t.Fatal("expected ArrayLength error for short half-domain LUT")
	}
}

func TestProcessListBitDepthChain(t *testing.T) {
	p := &ProcessList{Ops: []Operator{
		&Matrix{OpBase: OpBase{ID: "m", InBitDepth: F32, OutBitDepth: UInt10}, Size: 3, Coeffs: make([]float64, 9), Offsets: make([]float64, 3)},
		&Range{OpBase: OpBase{ID: "r", InBitDepth: UInt12, OutBitDepth: F32}},
	}}
	idx, err := p.CheckBitDepthChain()
	if err == nil {
		t.Fatal("expected BitDepthMismatch")
	}
	if idx != 1 {
		t.Errorf("mismatch index = %d, want 1", idx)
	}
	if k, ok := KindOf(err); !ok || k != BitDepthMismatch {
		t.Errorf("Kind = %v, want BitDepthMismatch", k)
	}
}

func TestFormatMetadataEqual(t *testing.T) {
	a := NewMetadata("Info")
	a.SetAttr("version", "1")
	child := NewMetadata("Copyright")
	child.Value = "Acme"
	a.AddChild(child)

	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}
	b.Children[0].Value = "Other"
	if a.Equal(b) {
		t.Fatal("mutated clone should not equal original")
	}
}

func TestReferenceRejectsCurrentMonitor(t *testing.T) {
	r := &Reference{Alias: "currentMonitor"}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for currentMonitor alias")
	}
}

func TestHalfFloatRoundTrip(t *testing.T) {
	vals := []float32{0, 1, -1, 0.5, 65504, -65504, 1e-5}
	for _, v := range vals {
		h := Float32ToHalf(v)
		back := HalfToFloat32(h)
		diff := float64(back) - float64(v)
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-2 {
			t.Errorf("half round trip for %v: got %v (diff %v)", v, back, diff)
		}
	}
}
