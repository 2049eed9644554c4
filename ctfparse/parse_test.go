/*
NAME
  parse_test.go

DESCRIPTION
  parse_test.go exercises Read end-to-end over xmlsrc, covering a
  multi-operator ProcessList, an IndexMap-bearing legacy Lut1D, the
  bare ColorCorrection CDL dialect, and the structural failure modes
  Read is responsible for.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ctfparse

import (
	"strings"
	"testing"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/xmlsrc"
)

func mustRead(t *testing.T, doc string) *clf.ProcessList {
	t.Helper()
	pl, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "test.ctf"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return pl
}

const matrixDoc = `<?xml version="1.0"?>
<ProcessList id="pl-1" version="1.7">
  <Description>a simple matrix</Description>
  <Matrix id="m1" inBitDepth="10i" outBitDepth="10i">
    <Array dim="3 4">
      1.0 0.0 0.0 0.0
      0.0 1.0 0.0 0.0
      0.0 0.0 1.0 0.0
    </Array>
  </Matrix>
</ProcessList>`

func TestReadMatrix(t *testing.T) {
	pl := mustRead(t, matrixDoc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	m, ok := pl.Ops[0].(*clf.Matrix)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.Matrix", pl.Ops[0])
	}
	if m.Size != 3 {
		t.Errorf("matrix size = %d, want 3", m.Size)
	}
	if len(pl.Descriptions) != 1 || pl.Descriptions[0] != "a simple matrix" {
		t.Errorf("Descriptions = %v", pl.Descriptions)
	}
	if !pl.Sealed() {
		t.Error("ProcessList not sealed after Read")
	}
}

const lut1DIndexMapDoc = `<ProcessList id="pl-2" version="1.3">
  <Lut1D id="l1" inBitDepth="10i" outBitDepth="16f">
    <IndexMap dim="2">64@0 940@1023</IndexMap>
    <Array dim="1024 3">` + repeatTriples(1024) + `</Array>
  </Lut1D>
</ProcessList>`

func repeatTriples(n int) string {
	out := make([]byte, 0, n*6)
	for i := 0; i < n; i++ {
		out = append(out, []byte("0.1 0.2 0.3 ")...)
	}
	return string(out)
}

func TestReadLut1DWithIndexMap(t *testing.T) {
	pl := mustRead(t, lut1DIndexMapDoc)
	if len(pl.Ops) != 2 {
		t.Fatalf("got %d ops, want 2 (materialized Range + Lut1D)", len(pl.Ops))
	}
	if _, ok := pl.Ops[0].(*clf.Range); !ok {
		t.Fatalf("op 0 is %T, want *clf.Range", pl.Ops[0])
	}
	lut, ok := pl.Ops[1].(*clf.Lut1D)
	if !ok {
		t.Fatalf("op 1 is %T, want *clf.Lut1D", pl.Ops[1])
	}
	if len(lut.Array.Values) != 1024*3 {
		t.Errorf("lut array has %d values, want %d", len(lut.Array.Values), 1024*3)
	}
}

const cdlRootDoc = `<ColorCorrection id="cc1">
  <SOPNode>
    <Slope>1.1 1.0 0.9</Slope>
    <Offset>0.01 0.0 -0.01</Offset>
    <Power>1.0 1.0 1.0</Power>
  </SOPNode>
  <SatNode>
    <Saturation>0.9</Saturation>
  </SatNode>
</ColorCorrection>`

func TestReadBareColorCorrection(t *testing.T) {
	pl := mustRead(t, cdlRootDoc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	cdl, ok := pl.Ops[0].(*clf.CDL)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.CDL", pl.Ops[0])
	}
	if cdl.Slope != [3]float64{1.1, 1.0, 0.9} {
		t.Errorf("Slope = %v", cdl.Slope)
	}
	if cdl.Saturation != 0.9 {
		t.Errorf("Saturation = %v, want 0.9", cdl.Saturation)
	}
}

const colorDecisionListDoc = `<ColorDecisionList>
  <ColorDecision>
    <ColorCorrection id="cc1">
      <SOPNode>
        <Slope>1 1 1</Slope>
        <Offset>0 0 0</Offset>
        <Power>1 1 1</Power>
      </SOPNode>
      <SatNode><Saturation>1</Saturation></SatNode>
    </ColorCorrection>
  </ColorDecision>
</ColorDecisionList>`

func TestReadColorDecisionList(t *testing.T) {
	pl := mustRead(t, colorDecisionListDoc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	if _, ok := pl.Ops[0].(*clf.CDL); !ok {
		t.Fatalf("op 0 is %T, want *clf.CDL", pl.Ops[0])
	}
}

func TestReadInvLut1DGetsInversionPrep(t *testing.T) {
	doc := `<ProcessList id="p">
    <InvLut1D id="l1" inBitDepth="32f" outBitDepth="32f">
      <Array dim="4 3">` + repeatTriples(4) + `</Array>
    </InvLut1D>
  </ProcessList>`
	pl := mustRead(t, doc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	lut, ok := pl.Ops[0].(*clf.Lut1D)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.Lut1D", pl.Ops[0])
	}
	if !lut.Exact {
		t.Error("constant-valued InvLut1D should be classified exact (non-decreasing)")
	}
}

func TestReadInvLut3DGetsFastForward(t *testing.T) {
	doc := `<ProcessList id="p">
    <InvLut3D id="l1" inBitDepth="32f" outBitDepth="32f">
      <Array dim="2 2 2 3">0 0 0  0 0 1  0 1 0  0 1 1  1 0 0  1 0 1  1 1 0  1 1 1</Array>
    </InvLut3D>
  </ProcessList>`
	pl := mustRead(t, doc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	lut, ok := pl.Ops[0].(*clf.Lut3D)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.Lut3D", pl.Ops[0])
	}
	if lut.FastForward == nil {
		t.Fatal("InvLut3D should always get a fast-forward approximation")
	}
	if lut.FastForward.Size() != lut.Size() {
		t.Errorf("fast-forward size = %d, want %d", lut.FastForward.Size(), lut.Size())
	}
}

func TestReadRejectsDuplicateCDLIDInCCC(t *testing.T) {
	doc := `<ColorCorrectionCollection>
    <ColorCorrection id="x">
      <SOPNode>
        <Slope>1 1 1</Slope>
        <Offset>0 0 0</Offset>
        <Power>1 1 1</Power>
      </SOPNode>
      <SatNode><Saturation>1</Saturation></SatNode>
    </ColorCorrection>
    <ColorCorrection id="x">
      <SOPNode>
        <Slope>1 1 1</Slope>
        <Offset>0 0 0</Offset>
        <Power>1 1 1</Power>
      </SOPNode>
      <SatNode><Saturation>1</Saturation></SatNode>
    </ColorCorrection>
  </ColorCorrectionCollection>`
	_, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "t.ccc"})
	if k, ok := clf.KindOf(err); !ok || k != clf.DuplicateID {
		t.Fatalf("err = %v, want DuplicateID", err)
	}
	if err == nil || !strings.Contains(err.Error(), "x") {
		t.Errorf("error message does not mention the duplicated id: %v", err)
	}
}

func TestReadRejectsEmptyProcessList(t *testing.T) {
	_, err := Read([]byte(`<ProcessList id="p"></ProcessList>`), xmlsrc.New, ReadOptions{FileName: "t.ctf"})
	if k, ok := clf.KindOf(err); !ok || k != clf.EmptyProcessList {
		t.Fatalf("err = %v, want EmptyProcessList", err)
	}
}

func TestReadRejectsTagMismatch(t *testing.T) {
	doc := `<ProcessList id="p"><Matrix id="m" inBitDepth="32f" outBitDepth="32f"></Range></ProcessList>`
	_, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "t.ctf"})
	if k, ok := clf.KindOf(err); !ok || k != clf.TagMismatch {
		t.Fatalf("err = %v, want TagMismatch", err)
	}
}

func TestReadRejectsBitDepthMismatch(t *testing.T) {
	doc := `<ProcessList id="p">
    <Matrix id="m1" inBitDepth="10i" outBitDepth="10i">
      <Array dim="3 4">1 0 0 0 0 1 0 0 0 0 1 0</Array>
    </Matrix>
    <Matrix id="m2" inBitDepth="16i" outBitDepth="16i">
      <Array dim="3 4">1 0 0 0 0 1 0 0 0 0 1 0</Array>
    </Matrix>
  </ProcessList>`
	_, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "t.ctf"})
	if k, ok := clf.KindOf(err); !ok || k != clf.BitDepthMismatch {
		t.Fatalf("err = %v, want BitDepthMismatch", err)
	}
}

func TestReadIgnoresUnknownElements(t *testing.T) {
	doc := `<ProcessList id="p">
    <SomeVendorExtension foo="bar"><Nested/></SomeVendorExtension>
    <Matrix id="m1" inBitDepth="32f" outBitDepth="32f">
      <Array dim="3 4">1 0 0 0 0 1 0 0 0 0 1 0</Array>
      <SomeVendorChild/>
    </Matrix>
  </ProcessList>`
	pl := mustRead(t, doc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
}

func TestReadInfoMetadataRoundtrips(t *testing.T) {
	doc := `<ProcessList id="p">
    <Info vendor="Acme"><Note lang="en">hello</Note></Info>
    <Matrix id="m1" inBitDepth="32f" outBitDepth="32f">
      <Array dim="3 4">1 0 0 0 0 1 0 0 0 0 1 0</Array>
    </Matrix>
  </ProcessList>`
	pl := mustRead(t, doc)
	if pl.Info == nil {
		t.Fatal("Info is nil")
	}
	if v, ok := pl.Info.Attr("vendor"); !ok || v != "Acme" {
		t.Errorf("Info vendor attr = %q, %v", v, ok)
	}
	if len(pl.Info.Children) != 1 || pl.Info.Children[0].Name != "Note" {
		t.Errorf("Info children = %v", pl.Info.Children)
	}
}
