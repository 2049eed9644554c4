/*
NAME
  exposurecontrast.go

DESCRIPTION
  exposurecontrast.go implements the Exposure/Contrast operator: a
  linear or video-style exposure/contrast/gamma adjustment around a
  pivot, with each parameter individually eligible to be marked
  dynamic.

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

import "fmt"

// ECStyle selects the Exposure/Contrast operator's curve family.
type ECStyle int

const (
	ECVideo ECStyle = iota
	ECLogarithmic
	ECLinear
)

var ecStyleNames = map[string]ECStyle{
	"video": ECVideo, "log": ECLogarithmic, "linear": ECLinear,
}

// ParseECStyle maps a style attribute spelling to an ECStyle.
func ParseECStyle(s string) (ECStyle, error) {
	if v, ok := ecStyleNames[s]; ok {
		return v, nil
	}
	return 0, NewError(UnknownStyle, "", 0, fmt.Sprintf("unknown ExposureContrast style %q", s))
}

// String formats an ECStyle using its CLF/CTF style attribute
// spelling.
func (s ECStyle) String() string {
	for k, v := range ecStyleNames {
		if v == s {
			return k
		}
	}
	return ""
}

// ExposureContrast is the Exposure/Contrast operator.
type ExposureContrast struct {
	OpBase
	Style      ECStyle
	Exposure   float64
	Contrast   float64
	Gamma      float64
	Pivot      float64
	LogExposureStep float64
	LogMidGray      float64
}

func (e *ExposureContrast) Type() OpType { return OpExposureContrast }

func (e *ExposureContrast) Validate() error {
	if e.Contrast == 0 {
		return NewError(StructuralError, "", 0, "ExposureContrast contrast must be non-zero")
	}
	if e.Gamma == 0 {
		return NewError(StructuralError, "", 0, "ExposureContrast gamma must be non-zero")
	}
	return nil
}

func (e *ExposureContrast) Normalize(inScale, outScale float64) {}

func (e *ExposureContrast) Clone() Operator {
	out := *e
	out.OpBase = e.OpBase.cloneBase()
	return &out
}
