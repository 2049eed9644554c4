/*
NAME
  operator.go

DESCRIPTION
  operator.go defines the Operator interface and OpBase, the fields
  common to all 17 CLF/CTF operator variants: id, name, bit depths,
  direction, metadata and dynamic-property flags.

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

// Direction is Forward or Inverse, carried by every operator.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "Inverse"
	}
	return "Forward"
}

// OpType identifies which of the operator structs an Operator is,
// independent of the Go type switch, for use in dispatch tables and
// diagnostics.
type OpType int

const (
	_ OpType = iota
	OpMatrix
	OpLut1D
	OpLut3D
	OpRange
	OpCDL
	OpLog
	OpGamma
	OpExposureContrast
	OpFixedFunction
	OpFunction
	OpGradingPrimary
	OpGradingRGBCurve
	OpGradingTone
	OpReference
)

var opTypeNames = map[OpType]string{
	OpMatrix:           "Matrix",
	OpLut1D:            "Lut1D",
	OpLut3D:            "Lut3D",
	OpRange:            "Range",
	OpCDL:              "CDL",
	OpLog:              "Log",
	OpGamma:            "Gamma",
	OpExposureContrast: "ExposureContrast",
	OpFixedFunction:    "FixedFunction",
	OpFunction:         "Function",
	OpGradingPrimary:   "GradingPrimary",
	OpGradingRGBCurve:  "GradingRGBCurve",
	OpGradingTone:      "GradingTone",
	OpReference:        "Reference",
}

func (t OpType) String() string {
	if s, ok := opTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// DynamicParam names a parameter that may be flagged dynamic (eligible
// for run-time override by the evaluator). The core only records the
// flag; the override mechanism belongs to the evaluator.
type DynamicParam int

const (
	DynExposure DynamicParam = iota
	DynContrast
	DynGamma
	DynGradingPrimary
	DynGradingRGBCurve
	DynGradingTone
)

// Operator is the common interface every operator variant satisfies.
type Operator interface {
	Base() *OpBase
	Type() OpType
	Validate() error
	Normalize(inScale, outScale float64)
	Clone() Operator
}

// OpBase holds the fields common to every operator variant. Concrete
// operator types embed it.
type OpBase struct {
	ID          string
	Name        string
	InBitDepth  BitDepth
	OutBitDepth BitDepth
	Direction   Direction
	Metadata    *FormatMetadata
	Descriptions []string
	Dynamic     map[DynamicParam]bool
}

// Base returns a pointer to the embedded OpBase, satisfying Operator
// for any type that embeds OpBase by value and defines no override.
func (b *OpBase) Base() *OpBase { return b }

// IsDynamic reports whether p is flagged dynamic on this operator.
func (b *OpBase) IsDynamic(p DynamicParam) bool {
	return b.Dynamic != nil && b.Dynamic[p]
}

// SetDynamic flags p as dynamic on this operator.
func (b *OpBase) SetDynamic(p DynamicParam) {
	if b.Dynamic == nil {
		b.Dynamic = make(map[DynamicParam]bool)
	}
	b.Dynamic[p] = true
}

// cloneBase returns a copy of b suitable for embedding in a cloned
// operator: metadata is deep-copied, dynamic flags are copied.
func (b OpBase) cloneBase() OpBase {
	out := b
	out.Metadata = b.Metadata.Clone()
	if b.Descriptions != nil {
		out.Descriptions = append([]string(nil), b.Descriptions...)
	}
	if b.Dynamic != nil {
		out.Dynamic = make(map[DynamicParam]bool, len(b.Dynamic))
		for k, v := range b.Dynamic {
			out.Dynamic[k] = v
		}
	}
	return out
}
