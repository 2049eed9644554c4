/*
NAME
  parse_test.go

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package numeric

import (
	"math"
	"testing"
)

func TestParseFloat64(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"-1.5e3", -1500, true},
		{"+2", 2, true},
		{"inf", math.Inf(1), true},
		{"-infinity", math.Inf(-1), true},
		{"NaN", 0, true}, // checked specially below
		{"0x1.8p3", 12, true},
		{"abc", 0, false},
		{"1.5x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		v, err := ParseFloat64([]byte(tt.in), 0, len(tt.in))
		if tt.ok && err != nil {
			t.Errorf("ParseFloat64(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseFloat64(%q): expected error, got %v", tt.in, v)
			}
			continue
		}
		if tt.in == "NaN" {
			if !math.IsNaN(v) {
				t.Errorf("ParseFloat64(%q) = %v, want NaN", tt.in, v)
			}
			continue
		}
		if v != tt.want {
			t.Errorf("ParseFloat64(%q) = %v, want %v", tt.in, v, tt.want)
		}
	}
}

func TestGetNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"   ", nil},
		{"1 2 3", []float64{1, 2, 3}},
		{"1,2,3", []float64{1, 2, 3}},
		{"1.0\n2.0\t3.0", []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		got, err := GetNumbers([]byte(tt.in))
		if err != nil {
			t.Errorf("GetNumbers(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("GetNumbers(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("GetNumbers(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestGetNextIndexPair(t *testing.T) {
	tests := []struct {
		in       string
		wantFrom float64
		wantTo   float64
	}{
		{"64@0", 64, 0},
		{"940 @ 1023", 940, 1023},
		{"  64  @  0  ", 64, 0},
	}
	for _, tt := range tests {
		p, _, ok, err := GetNextIndexPair([]byte(tt.in), 0)
		if err != nil {
			t.Fatalf("GetNextIndexPair(%q): %v", tt.in, err)
		}
		if !ok {
			t.Fatalf("GetNextIndexPair(%q): not ok", tt.in)
		}
		if p.From != tt.wantFrom || p.To != tt.wantTo {
			t.Errorf("GetNextIndexPair(%q) = %+v, want {%v %v}", tt.in, p, tt.wantFrom, tt.wantTo)
		}
	}
}

func TestParseInt64Overflow(t *testing.T) {
	_, err := ParseInt64([]byte("1.5"), 0, 3)
	if err == nil {
		t.Fatal("expected overflow error for fractional int")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != Overflow {
		t.Fatalf("expected Overflow, got %v", err)
	}
}
