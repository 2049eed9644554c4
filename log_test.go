package clf

import "testing"

func TestCineonToOCIOUsesRefWhite(t *testing.T) {
	base := CineonParams{Gamma: 0.6, RefWhite: 685, RefBlack: 95}
	shifted := base
	shifted.RefWhite = 700

	a := CineonToOCIO(base)
	b := CineonToOCIO(shifted)
	if a.LogSideOffset == b.LogSideOffset {
		t.Error("changing RefWhite should change LogSideOffset")
	}
}

func TestCineonToOCIOUsesHighlightAndShadow(t *testing.T) {
	base := CineonParams{Gamma: 0.6, RefWhite: 685, RefBlack: 95}
	highlight := base
	highlight.Highlight = 0.2
	shadow := base
	shadow.Shadow = 0.2

	a := CineonToOCIO(base)
	h := CineonToOCIO(highlight)
	s := CineonToOCIO(shadow)

	if a == h {
		t.Error("nonzero Highlight should change the OCIO parameterization")
	}
	if a == s {
		t.Error("nonzero Shadow should change the OCIO parameterization")
	}
}

func TestCineonToOCIODefaultsGamma(t *testing.T) {
	withGamma := CineonToOCIO(CineonParams{Gamma: 0.6, RefWhite: 685, RefBlack: 95})
	zeroGamma := CineonToOCIO(CineonParams{RefWhite: 685, RefBlack: 95})
	if withGamma != zeroGamma {
		t.Error("a zero Gamma should default to the standard 0.6 Cineon gamma")
	}
}
