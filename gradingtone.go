/*
NAME
  gradingtone.go

DESCRIPTION
  gradingtone.go implements the GradingTone operator: blacks, shadows,
  midtones, highlights and whites RGBMSW bundles plus scene-linear
  S-contrast.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clf

// GradingToneStyle mirrors GradingPrimaryStyle's log/lin/video
// encoding selector.
type GradingToneStyle = GradingPrimaryStyle

// GradingTone is the GradingTone operator.
type GradingTone struct {
	OpBase
	Style      GradingToneStyle
	Blacks     RGBMSW
	Shadows    RGBMSW
	Midtones   RGBMSW
	Highlights RGBMSW
	Whites     RGBMSW
	SContrast  float64
	LocalBypass bool
}

func (g *GradingTone) Type() OpType { return OpGradingTone }

func (g *GradingTone) Validate() error {
	if g.SContrast < 0 {
		return NewError(StructuralError, "", 0, "GradingTone scontrast must not be negative")
	}
	return nil
}

func (g *GradingTone) Normalize(inScale, outScale float64) {}

func (g *GradingTone) Clone() Operator {
	out := *g
	out.OpBase = g.OpBase.cloneBase()
	return &out
}
