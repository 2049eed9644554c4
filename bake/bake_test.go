package bake

import (
	"testing"

	"github.com/ausocean/clf"
)

// gainEvaluator returns an EvaluatorFor a single-op ProcessList whose
// Matrix op scales every channel by factor with no cross terms.
func gainEvaluator(factor float64) clf.EvaluatorFor {
	return func(op clf.Operator) (clf.EvalFunc, error) {
		return func(p clf.Pixel) clf.Pixel {
			return clf.Pixel{p[0] * factor, p[1] * factor, p[2] * factor, p[3]}
		}, nil
	}
}

func gainPipeline() *clf.ProcessList {
	return &clf.ProcessList{
		Ops: []clf.Operator{
			&clf.Matrix{OpBase: clf.OpBase{ID: "gain", InBitDepth: clf.F32, OutBitDepth: clf.F32},
				Size: 3, Coeffs: []float64{2, 0, 0, 0, 2, 0, 0, 0, 2}, Offsets: []float64{0, 0, 0}},
		},
	}
}

func TestBakeNoCrosstalkProduces1D(t *testing.T) {
	res, err := Bake(gainPipeline(), gainEvaluator(2), Options{ID: "baked", ShaperSize: 17})
	if err != nil {
		t.Fatalf("Bake: %v", err)
	}
	if res.Shape != Shape1D {
		t.Fatalf("Shape = %v, want 1D", res.Shape)
	}
	if len(res.ProcessList.Ops) != 1 {
		t.Fatalf("len(Ops) = %d, want 1", len(res.ProcessList.Ops))
	}
	lut, ok := res.ProcessList.Ops[0].(*clf.Lut1D)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.Lut1D", res.ProcessList.Ops[0])
	}
	mid := lut.Length() / 2
	x := float64(mid) / float64(lut.Length()-1)
	got := lut.Array.Values[mid*3]
	want := x * 2
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("baked 1D value at %v = %v, want %v", x, got, want)
	}
}

// crosstalkEvaluator mixes channels (a rotation-like pipeline), which
// the Jacobian check should flag as crosstalk.
func crosstalkEvaluator() clf.EvaluatorFor {
	return func(op clf.Operator) (clf.EvalFunc, error) {
		return func(p clf.Pixel) clf.Pixel {
			return clf.Pixel{
				0.5*p[0] + 0.5*p[1],
				0.5*p[1] + 0.5*p[2],
				0.5*p[2] + 0.5*p[0],
				p[3],
			}
		}, nil
	}
}

func crosstalkPipeline() *clf.ProcessList {
	return &clf.ProcessList{
		Ops: []clf.Operator{
			&clf.Matrix{OpBase: clf.OpBase{ID: "mix", InBitDepth: clf.F32, OutBitDepth: clf.F32},
				Size:    3,
				Coeffs:  []float64{0.5, 0.5, 0, 0, 0.5, 0.5, 0.5, 0, 0.5},
				Offsets: []float64{0, 0, 0},
			},
		},
	}
}

func TestBakeCrosstalkWithoutShaperProduces3D(t *testing.T) {
	res, err := Bake(crosstalkPipeline(), crosstalkEvaluator(), Options{ID: "baked", CubeSize: 5})
	if err != nil {
		t.Fatalf("Bake: %v", err)
	}
	if res.Shape != Shape3D {
		t.Fatalf("Shape = %v, want 3D", res.Shape)
	}
	if len(res.ProcessList.Ops) != 1 {
		t.Fatalf("len(Ops) = %d, want 1", len(res.ProcessList.Ops))
	}
	if _, ok := res.ProcessList.Ops[0].(*clf.Lut3D); !ok {
		t.Fatalf("op 0 is %T, want *clf.Lut3D", res.ProcessList.Ops[0])
	}
}

func TestBakeCrosstalkWithShaperProduces1D3D(t *testing.T) {
	rng := [2]float64{-0.5, 1.5}
	res, err := Bake(crosstalkPipeline(), crosstalkEvaluator(), Options{
		ID: "baked", CubeSize: 5, Shaper: true, ShaperSize: 9, ShaperRange: &rng,
	})
	if err != nil {
		t.Fatalf("Bake: %v", err)
	}
	if res.Shape != Shape1D3D {
		t.Fatalf("Shape = %v, want 1D+3D", res.Shape)
	}
	if len(res.ProcessList.Ops) != 3 {
		t.Fatalf("len(Ops) = %d, want 3 (Range, Lut1D, Lut3D)", len(res.ProcessList.Ops))
	}
	if _, ok := res.ProcessList.Ops[0].(*clf.Range); !ok {
		t.Fatalf("op 0 is %T, want *clf.Range", res.ProcessList.Ops[0])
	}
	if _, ok := res.ProcessList.Ops[1].(*clf.Lut1D); !ok {
		t.Fatalf("op 1 is %T, want *clf.Lut1D", res.ProcessList.Ops[1])
	}
	if _, ok := res.ProcessList.Ops[2].(*clf.Lut3D); !ok {
		t.Fatalf("op 2 is %T, want *clf.Lut3D", res.ProcessList.Ops[2])
	}
}

func TestBakeRejectsSmallCubeSize(t *testing.T) {
	_, err := Bake(crosstalkPipeline(), crosstalkEvaluator(), Options{CubeSize: 1})
	if err == nil {
		t.Fatal("expected InvalidCubeSize error")
	}
	if k, ok := clf.KindOf(err); !ok || k != clf.InvalidCubeSize {
		t.Errorf("KindOf(err) = %v, %v, want InvalidCubeSize, true", k, ok)
	}
}
