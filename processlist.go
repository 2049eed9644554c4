/*
NAME
  processlist.go

DESCRIPTION
  processlist.go implements ProcessList: the ordered, immutable-once-
  sealed pipeline of operators a successful parse produces, plus the
  bit-depth chaining invariant every pair of adjacent operators must
  satisfy.

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

	"github.com/ausocean/clf/version"
)

// ProcessList is the finished, ordered sequence of operators comprising
// one color transform, plus its document-level metadata.
type ProcessList struct {
	ID          string
	Name        string
	InverseOf   string
	InDescriptor  string
	OutDescriptor string
	Info        *FormatMetadata
	Descriptions []string
	Metadata    *FormatMetadata

	CTFVersion version.Version
	CLFVersion version.Version
	IsCLF      bool

	Ops []Operator

	sealed bool
}

// Seal transfers ownership of the ProcessList from the parser's
// element stack to the caller, marking it immutable. Called once by
// the pipeline-assembly step after every other check has passed.
func (p *ProcessList) Seal() { p.sealed = true }

// Sealed reports whether Seal has been called.
func (p *ProcessList) Sealed() bool { return p.sealed }

// CheckBitDepthChain verifies that for every pair of adjacent
// operators (Ok, Ok+1), Ok.OutBitDepth == Ok+1.InBitDepth. It returns
// the index of the first offending operator (the second of the pair)
// and a BitDepthMismatch error, or -1, nil if the chain holds.
func (p *ProcessList) CheckBitDepthChain() (int, error) {
	for i := 1; i < len(p.Ops); i++ {
		prev := p.Ops[i-1].Base()
		cur := p.Ops[i].Base()
		if prev.OutBitDepth != cur.InBitDepth {
			return i, NewError(BitDepthMismatch, "", 0,
				fmt.Sprintf("operator %d (%s) inBitDepth %s does not match operator %d (%s) outBitDepth %s",
					i, cur.ID, cur.InBitDepth, i-1, prev.ID, prev.OutBitDepth))
		}
	}
	return -1, nil
}

// Clone returns a deep copy of p, including every operator and the
// document-level metadata tree.
func (p *ProcessList) Clone() *ProcessList {
	out := &ProcessList{
		ID: p.ID, Name: p.Name, InverseOf: p.InverseOf,
		InDescriptor: p.InDescriptor, OutDescriptor: p.OutDescriptor,
		Info: p.Info.Clone(), Metadata: p.Metadata.Clone(),
		CTFVersion: p.CTFVersion, CLFVersion: p.CLFVersion, IsCLF: p.IsCLF,
		sealed: p.sealed,
	}
	out.Descriptions = append([]string(nil), p.Descriptions...)
	for _, op := range p.Ops {
		out.Ops = append(out.Ops, op.Clone())
	}
	return out
}
