/*
NAME
  reference.go

DESCRIPTION
  reference.go implements the Reference operator: an include by path or
  alias. The core records the reference but never resolves it; the
  embedding application resolves via the ResolvePath collaborator and
  performs its own cycle detection.

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

// Reference is the Reference operator.
type Reference struct {
	OpBase
	Path       string
	Alias      string
	IsInverted bool
	BasePathHint string
}

func (r *Reference) Type() OpType { return OpReference }

// Validate rejects the one alias known at read time to be
// unresolvable: "currentMonitor" names a dynamic runtime concept the
// core has no way to satisfy.
func (r *Reference) Validate() error {
	if r.Path == "" && r.Alias == "" {
		return NewError(MissingAttribute, "", 0, "Reference must specify path or alias")
	}
	if r.Alias == "currentMonitor" {
		return NewError(StructuralError, "", 0, `Reference alias "currentMonitor" is unresolvable at read time`)
	}
	return nil
}

func (r *Reference) Normalize(inScale, outScale float64) {}

func (r *Reference) Clone() Operator {
	out := *r
	out.OpBase = r.OpBase.cloneBase()
	return &out
}
