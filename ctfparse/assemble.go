/*
NAME
  assemble.go

DESCRIPTION
  assemble.go implements the final pipeline-assembly step Read
  performs once every element has been parsed: verify the bit-depth
  chain holds across the whole ProcessList, normalize every operator to
  its canonical 32-bit-float representation, then seal the result.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ctfparse

import "github.com/ausocean/clf"

// assemble runs the bit-depth chain check, per-operator normalization
// and sealing required before a ProcessList is handed back to the
// caller.
func assemble(pl *clf.ProcessList, file string) (*clf.ProcessList, error) {
	if _, err := pl.CheckBitDepthChain(); err != nil {
		return nil, attachFile(err, file)
	}
	for _, op := range pl.Ops {
		base := op.Base()
		op.Normalize(base.InBitDepth.Scale(), base.OutBitDepth.Scale())
	}
	pl.Seal()
	return pl, nil
}

// attachFile rewrites a *clf.ParseError's File field, used for errors
// raised deep inside the data model (which has no file context of its
// own) on their way back out through Read.
func attachFile(err error, file string) error {
	pe, ok := err.(*clf.ParseError)
	if !ok {
		return err
	}
	out := *pe
	out.File = file
	return &out
}

// attachContext rewrites a *clf.ParseError's File and Line fields,
// used for errors raised inside package invert (which has no file or
// line context of its own) on their way back out through a builder's
// end().
func attachContext(err error, file string, line int) error {
	pe, ok := err.(*clf.ParseError)
	if !ok {
		return err
	}
	out := *pe
	out.File = file
	out.Line = line
	return &out
}
