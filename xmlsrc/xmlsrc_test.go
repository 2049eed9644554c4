package xmlsrc

import (
	"testing"

	"github.com/ausocean/clf"
)

func drain(t *testing.T, src clf.EventSource) []clf.XMLEvent {
	t.Helper()
	var evs []clf.XMLEvent
	for {
		ev, ok, err := src.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestNewEmitsStartEndAndChars(t *testing.T) {
	src, err := New([]byte(`<ProcessList id="p1"><Description>hi</Description></ProcessList>`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	evs := drain(t, src)

	if len(evs) == 0 {
		t.Fatal("expected events")
	}
	if evs[0].Kind != clf.StartElementEvent || evs[0].Name != "ProcessList" {
		t.Fatalf("first event = %+v, want ProcessList start", evs[0])
	}
	if evs[0].Attrs[0].Key != "id" || evs[0].Attrs[0].Value != "p1" {
		t.Fatalf("attrs = %+v, want id=p1", evs[0].Attrs)
	}

	var sawChars bool
	for _, ev := range evs {
		if ev.Kind == clf.CharsEvent && string(ev.Chars) == "hi" {
			sawChars = true
		}
	}
	if !sawChars {
		t.Error("expected a CharsEvent with \"hi\"")
	}
}

func TestNewStripsBOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	doc := append(bom, []byte(`<ProcessList/>`)...)
	src, err := New(doc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	evs := drain(t, src)
	if len(evs) == 0 || evs[0].Name != "ProcessList" {
		t.Fatalf("evs = %+v, want a leading ProcessList event", evs)
	}
}

func TestLineNumbersAdvance(t *testing.T) {
	doc := "<ProcessList>\n  <Matrix>\n  </Matrix>\n</ProcessList>"
	src, err := New([]byte(doc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	evs := drain(t, src)

	var matrixLine int
	for _, ev := range evs {
		if ev.Kind == clf.StartElementEvent && ev.Name == "Matrix" {
			matrixLine = ev.Line
		}
	}
	if matrixLine != 2 {
		t.Errorf("Matrix start line = %d, want 2", matrixLine)
	}
}
