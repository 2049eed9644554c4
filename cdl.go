/*
NAME
  cdl.go

DESCRIPTION
  cdl.go implements the CDL operator: ASC slope/offset/power (SOP) per
  channel plus a saturation (SAT) value, shared by the CTF/CLF <CDL>
  element and the sibling ASC CDL CC/CCC/CDL dialect grammars.

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

// CDLStyle selects the ASC CDL clamping convention.
type CDLStyle int

const (
	CDLv1_2Fwd CDLStyle = iota
	CDLv1_2Rev
	CDLNoClampFwd
	CDLNoClampRev
)

var cdlStyleNames = map[string]CDLStyle{
	"Fwd": CDLv1_2Fwd, "Rev": CDLv1_2Rev,
	"FwdNoClamp": CDLNoClampFwd, "RevNoClamp": CDLNoClampRev,
}

// ParseCDLStyle maps a style attribute spelling to a CDLStyle.
func ParseCDLStyle(s string) (CDLStyle, error) {
	if v, ok := cdlStyleNames[s]; ok {
		return v, nil
	}
	return 0, NewError(UnknownStyle, "", 0, fmt.Sprintf("unknown CDL style %q", s))
}

// String formats a CDLStyle using its CLF/CTF style attribute spelling.
func (s CDLStyle) String() string {
	for k, v := range cdlStyleNames {
		if v == s {
			return k
		}
	}
	return ""
}

// CDL is the CDL operator: ASC Color Decision List grade parameters.
type CDL struct {
	OpBase
	Style      CDLStyle
	Slope      [3]float64
	Offset     [3]float64
	Power      [3]float64
	Saturation float64
}

func (c *CDL) Type() OpType { return OpCDL }

// Validate enforces the ASC CDL parameter domain, warning (not
// failing) when Slope or Power carry negative values, matching the
// leniency of established CDL readers: negative Slope/Power are
// clamped to zero rather than rejected.
func (c *CDL) Validate() error {
	for i := 0; i < 3; i++ {
		if c.Slope[i] < 0 {
			if Log != nil {
				Log.Warning("CDL slope channel below zero, clamping", "channel", i, "value", c.Slope[i])
			}
			c.Slope[i] = 0
		}
		if c.Power[i] < 0 {
			if Log != nil {
				Log.Warning("CDL power channel below zero, clamping", "channel", i, "value", c.Power[i])
			}
			c.Power[i] = 0
		}
	}
	if c.Saturation < 0 {
		return NewError(StructuralError, "", 0, "CDL saturation must not be negative")
	}
	return nil
}

func (c *CDL) Normalize(inScale, outScale float64) {}

func (c *CDL) Clone() Operator {
	out := *c
	out.OpBase = c.OpBase.cloneBase()
	return &out
}
