package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.7", Version{1, 7}},
		{"2", Version{2, 0}},
		{"3.0", Version{3, 0}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompareAndPredicates(t *testing.T) {
	v1 := Version{1, 4}
	v2 := Version{1, 8}
	if !v1.AtMost(v2) {
		t.Error("1.4 should be at most 1.8")
	}
	if v1.AtLeast(v2) {
		t.Error("1.4 should not be at least 1.8")
	}
	if !v2.InRange(Version{1, 0}, Version{2, 0}) {
		t.Error("1.8 should be in range [1.0, 2.0]")
	}
}

func TestCLFToCTF(t *testing.T) {
	tests := []struct {
		clf  Version
		want Version
	}{
		{Version{1, 0}, CTF1_7},
		{Version{2, 0}, CTF1_7},
		{Version{2, 1}, CTF2_0},
		{Version{3, 0}, CTF2_0},
	}
	for _, tt := range tests {
		got := CLFToCTF(tt.clf)
		if got != tt.want {
			t.Errorf("CLFToCTF(%v) = %v, want %v", tt.clf, got, tt.want)
		}
	}
}
