/*
NAME
  log.go

DESCRIPTION
  log.go implements the Log operator. It accepts either of two mutually
  exclusive on-disk parameterizations (legacy Cineon, modern OCIO) and
  always normalizes to the OCIO set for storage.

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

import (
	"fmt"
	"math"
)

// LogStyle selects which base transfer curve a Log operator applies.
type LogStyle int

const (
	LogLog10 LogStyle = iota
	LogLog10Rev
	LogLog2
	LogLog2Rev
	LogLinToLog
	LogLogToLin
	LogCameraLinToLog
	LogCameraLogToLin
)

// CineonParams is the legacy Cineon-style parameterization, mutually
// exclusive with OCIOParams within a single <LogParams>.
type CineonParams struct {
	Gamma     float64
	RefWhite  float64
	RefBlack  float64
	Highlight float64
	Shadow    float64
}

// OCIOParams is the modern parameterization; all Log operators are
// normalized to this set in memory regardless of which set was
// read from disk.
type OCIOParams struct {
	Base          float64
	LinSideSlope  float64
	LinSideOffset float64
	LogSideSlope  float64
	LogSideOffset float64
	LinSideBreak  float64
	LinearSlope   float64
	HasLinSideBreak bool
	HasLinearSlope  bool
}

// Log is the Log operator.
type Log struct {
	OpBase
	Style  LogStyle
	Params []OCIOParams // one per channel, or a single shared entry.
}

func (l *Log) Type() OpType { return OpLog }

func (l *Log) Validate() error {
	if len(l.Params) == 0 {
		return NewError(StructuralError, "", 0, "Log operator must have at least one LogParams entry")
	}
	for i, p := range l.Params {
		if p.LogSideSlope == 0 {
			return NewError(StructuralError, "", 0, fmt.Sprintf("Log channel %d logSideSlope must be non-zero", i))
		}
	}
	return nil
}

func (l *Log) Normalize(inScale, outScale float64) {}

func (l *Log) Clone() Operator {
	out := &Log{OpBase: l.OpBase.cloneBase(), Style: l.Style}
	out.Params = append([]OCIOParams(nil), l.Params...)
	return out
}

// CineonToOCIO converts the legacy Cineon parameterization to the
// modern OCIO set, the normalization the reader applies regardless of
// which parameterization was on disk. The conversion follows Cineon's
// gain/offset log-to-linear relationship, a 10-bit code value mapping
// to linear light via
//
//	linear = gain*10^((code-effWhite)*density/gamma) - offset
//	gain   = 1 / (1 - 10^((effBlack-effWhite)*density/gamma))
//	offset = gain - 1
//
// with highlight and shadow widening the effective white and black
// code points (effWhite, effBlack) toward the ends of the code range,
// giving the soft-clip rolloff Cineon applies near the print-density
// extremes. Solving that relationship for code as a function of
// linear and matching terms against the OCIO LinSideSlope/
// LinSideOffset/LogSideSlope/LogSideOffset form yields the result
// below.
func CineonToOCIO(c CineonParams) OCIOParams {
	const codeRange = 1023.0
	const density = 0.002

	gamma := c.Gamma
	if gamma == 0 {
		gamma = 0.6
	}

	effWhite := c.RefWhite + c.Highlight*(codeRange-c.RefWhite)
	effBlack := c.RefBlack - c.Shadow*c.RefBlack

	slopePerCode := density / gamma
	gain := 1.0 / (1.0 - math.Pow(10, (effBlack-effWhite)*slopePerCode))
	offset := gain - 1.0

	return OCIOParams{
		Base:          10,
		LinSideSlope:  1.0 / gain,
		LinSideOffset: offset / gain,
		LogSideSlope:  (1.0 / slopePerCode) / codeRange,
		LogSideOffset: effWhite / codeRange,
	}
}

// Eval evaluates the OCIO-parameterized log curve at a linear input x
// for LinToLog-family styles, applying the optional linear-side break
// and shoulder (linearSlope) as OCIO's LogOpData does.
func (p OCIOParams) Eval(x float64) float64 {
	if p.HasLinSideBreak && x <= p.LinSideBreak {
		slope := p.LinearSlope
		if !p.HasLinearSlope {
			// Default linear-side slope continuous with the log curve at
			// the break point.
			slope = (p.LogSideSlope * p.LinSideSlope) / ((x + p.LinSideOffset) * math.Log(p.Base))
		}
		return slope*(x-p.LinSideBreak) + logCurve(p, p.LinSideBreak)
	}
	return logCurve(p, x)
}

func logCurve(p OCIOParams, x float64) float64 {
	lin := p.LinSideSlope*x + p.LinSideOffset
	if lin <= 0 {
		lin = 1e-10
	}
	return p.LogSideSlope*(math.Log(lin)/math.Log(p.Base)) + p.LogSideOffset
}
