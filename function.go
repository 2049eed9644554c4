/*
NAME
  function.go

DESCRIPTION
  function.go implements the CTF-only Function operator: a named,
  opaque placeholder for transforms OCIO represents but CLF/CTF has no
  dedicated element for (SPEC_FULL.md supplemented feature 3). This
  module stores the style and an opaque FormatMetadata-shaped parameter
  tree; it supplies no built-in math, matching the caller-supplied
  EvaluatorFor contract.

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

// Function is the Function operator: a named placeholder with opaque
// parameters. Only CTF legalizes it.
type Function struct {
	OpBase
	Style  string
	Params *FormatMetadata // opaque parameter tree, stored but not interpreted.
}

func (f *Function) Type() OpType { return OpFunction }

func (f *Function) Validate() error {
	if f.Style == "" {
		return NewError(MissingAttribute, "", 0, "Function operator requires a style")
	}
	return nil
}

func (f *Function) Normalize(inScale, outScale float64) {}

func (f *Function) Clone() Operator {
	return &Function{OpBase: f.OpBase.cloneBase(), Style: f.Style, Params: f.Params.Clone()}
}
