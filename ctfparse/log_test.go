/*
NAME
  log_test.go

DESCRIPTION
  log_test.go covers the Log operator reader: a well-formed Cineon
  LogParams, a partial one missing a required Cineon attribute, and a
  LogParams mixing Cineon and OCIO parameters, which is rejected.

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
	"testing"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/xmlsrc"
)

func TestReadLogCineonParams(t *testing.T) {
	doc := `<ProcessList id="p">
    <Log id="lg1" inBitDepth="32f" outBitDepth="32f" style="log10">
      <LogParams gamma="0.6" refWhite="685" refBlack="95" highlight="0" shadow="0"/>
    </Log>
  </ProcessList>`
	pl := mustRead(t, doc)
	if len(pl.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(pl.Ops))
	}
	lg, ok := pl.Ops[0].(*clf.Log)
	if !ok {
		t.Fatalf("op 0 is %T, want *clf.Log", pl.Ops[0])
	}
	if len(lg.Params) != 1 {
		t.Fatalf("got %d LogParams, want 1", len(lg.Params))
	}
}

func TestReadLogRejectsPartialCineonParams(t *testing.T) {
	doc := `<ProcessList id="p">
    <Log id="lg1" inBitDepth="32f" outBitDepth="32f" style="log10">
      <LogParams gamma="0.6" refWhite="685"/>
    </Log>
  </ProcessList>`
	_, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "t.ctf"})
	if k, ok := clf.KindOf(err); !ok || k != clf.MissingAttribute {
		t.Fatalf("err = %v, want MissingAttribute", err)
	}
}

func TestReadLogRejectsMixedParams(t *testing.T) {
	doc := `<ProcessList id="p">
    <Log id="lg1" inBitDepth="32f" outBitDepth="32f" style="log10">
      <LogParams gamma="0.6" refWhite="685" refBlack="95" highlight="0" shadow="0" base="10"/>
    </Log>
  </ProcessList>`
	_, err := Read([]byte(doc), xmlsrc.New, ReadOptions{FileName: "t.ctf"})
	if k, ok := clf.KindOf(err); !ok || k != clf.MixedLogParams {
		t.Fatalf("err = %v, want MixedLogParams", err)
	}
}
