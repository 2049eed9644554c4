/*
NAME
  write_test.go

DESCRIPTION
  write_test.go exercises Write end-to-end: parse a document with
  ctfparse, write it back out, parse the result again, and compare the
  first parse with the second using go-cmp. The comparison allows
  unexported fields, ignores the version and dialect fields, and treats
  floats within 1e-6 as equal, absorbing rounding from the bit-depth
  rescaling that Write undoes and Read redoes.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clfwrite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/ctfparse"
	"github.com/ausocean/clf/xmlsrc"
)

func mustRead(t *testing.T, doc string) *clf.ProcessList {
	t.Helper()
	pl, err := ctfparse.Read([]byte(doc), xmlsrc.New, ctfparse.ReadOptions{FileName: "test.ctf"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return pl
}

var diffOpts = []cmp.Option{
	cmp.AllowUnexported(clf.ProcessList{}),
	cmpopts.IgnoreFields(clf.ProcessList{}, "CTFVersion", "CLFVersion", "IsCLF"),
	cmpopts.EquateApprox(1e-6, 0),
}

func roundTrip(t *testing.T, doc string, opts Options) *clf.ProcessList {
	t.Helper()
	pl := mustRead(t, doc)
	out, err := Write(pl, opts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	return mustRead(t, string(out))
}

const matrixDoc = `<?xml version="1.0"?>
<ProcessList id="pl-1" version="1.7">
  <Description>a simple matrix</Description>
  <Matrix id="m1" inBitDepth="10i" outBitDepth="10i">
    <Array dim="3 4">
      1.0 0.0 0.0 0.1
      0.0 1.0 0.0 0.2
      0.0 0.0 1.0 0.3
    </Array>
  </Matrix>
</ProcessList>`

func TestWriteMatrixRoundTrips(t *testing.T) {
	pl := mustRead(t, matrixDoc)
	again := roundTrip(t, matrixDoc, Options{Dialect: DialectAuto})
	if diff := cmp.Diff(pl, again, diffOpts...); diff != "" {
		t.Errorf("round trip changed ProcessList (-want +got):\n%s", diff)
	}
}

const lut1DDoc = `<ProcessList id="pl-2" version="1.3">
  <Lut1D id="l1" inBitDepth="10i" outBitDepth="16f" interpolation="linear">
    <Array dim="4 3">
      0.0 0.0 0.0
      0.25 0.25 0.25
      0.75 0.75 0.75
      1.0 1.0 1.0
    </Array>
  </Lut1D>
</ProcessList>`

func TestWriteLut1DRoundTrips(t *testing.T) {
	pl := mustRead(t, lut1DDoc)
	again := roundTrip(t, lut1DDoc, Options{Dialect: DialectAuto})
	if diff := cmp.Diff(pl, again, diffOpts...); diff != "" {
		t.Errorf("round trip changed ProcessList (-want +got):\n%s", diff)
	}
}

const gradingDoc = `<ProcessList id="pl-3" version="2.0">
  <GradingPrimary id="g1" inBitDepth="32f" outBitDepth="32f" style="log">
    <Brightness rgb="0.1 0.2 0.3" master="0.0"/>
    <Contrast rgb="1.0 1.0 1.0" master="1.0"/>
    <Gamma rgb="1.0 1.0 1.0" master="1.0"/>
    <Saturation>1.0</Saturation>
    <Pivot contrast="0.18" black="0.0" white="1.0"/>
    <ClampBlack>0.0</ClampBlack>
    <ClampWhite>1.0</ClampWhite>
  </GradingPrimary>
</ProcessList>`

func TestWriteGradingPrimaryRoundTrips(t *testing.T) {
	pl := mustRead(t, gradingDoc)
	again := roundTrip(t, gradingDoc, Options{Dialect: DialectCTF})
	if diff := cmp.Diff(pl, again, diffOpts...); diff != "" {
		t.Errorf("round trip changed ProcessList (-want +got):\n%s", diff)
	}
}

func TestWriteFailsUnsupportedInCLF(t *testing.T) {
	pl := mustRead(t, gradingDoc)
	_, err := Write(pl, Options{Dialect: DialectCLF})
	if err == nil {
		t.Fatal("expected UnsupportedInCLF error for GradingPrimary")
	}
	if k, ok := clf.KindOf(err); !ok || k != clf.UnsupportedInCLF {
		t.Errorf("KindOf(err) = %v, %v, want UnsupportedInCLF, true", k, ok)
	}
}

func TestWriteCDLRoundTrips(t *testing.T) {
	const doc = `<ProcessList id="pl-4" version="1.7">
  <CDL id="c1" inBitDepth="32f" outBitDepth="32f" style="Fwd">
    <SOPNode>
      <Slope>1.1 1.0 0.9</Slope>
      <Offset>0.01 0.0 -0.01</Offset>
      <Power>1.0 1.0 1.0</Power>
    </SOPNode>
    <SatNode>
      <Saturation>1.0</Saturation>
    </SatNode>
  </CDL>
</ProcessList>`
	pl := mustRead(t, doc)
	again := roundTrip(t, doc, Options{Dialect: DialectCLF})
	if diff := cmp.Diff(pl, again, diffOpts...); diff != "" {
		t.Errorf("round trip changed ProcessList (-want +got):\n%s", diff)
	}
}
