/*
NAME
  collaborators.go

DESCRIPTION
  collaborators.go declares the injected interfaces this module
  exposes as external collaborators: ResolvePath (Reference
  resolution) and EvaluatorFor (the per-op evaluation kernel the
  Baker composes with).
  Neither is implemented by this module; they are the seams downstream
  hosts plug into, the same way clf.EventSourceFunc is.

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

// Pixel is an RGBA sample in whatever normalized domain the caller's
// evaluator operates in. The core never interprets pixel values itself
// outside of invert's fast-forward LUT sampling; Pixel exists only so
// ResolvePath/EvaluatorFor/Bake have a concrete shape to agree on.
type Pixel [4]float64

// ResolvePath resolves a Reference operator's path or alias to the
// byte stream of the referenced CLF/CTF file. Implementations must
// cycle-detect: the core stores Reference operators but never chains
// through them itself.
type ResolvePath func(src string) ([]byte, error)

// EvalFunc is a pure per-pixel evaluation kernel for one operator.
type EvalFunc func(Pixel) Pixel

// EvaluatorFor returns the evaluation kernel for op, used by the Baker
// to sample an arbitrary pipeline while reducing it to LUTs. The core
// never evaluates pixels itself outside of invert's LUT sampling; this
// is the seam a downstream evaluation library fills in.
type EvaluatorFor func(op Operator) (EvalFunc, error)
