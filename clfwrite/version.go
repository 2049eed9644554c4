/*
NAME
  version.go

DESCRIPTION
  version.go implements the writer's "minimum version whose dispatch
  table can reconstruct every op in the list" rule, and the CLF
  legal-operator set: Log and Gamma only became legal in CLF from
  version 3.0 onward, sharing the CTF 2.0 style set minus alpha.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clfwrite

import (
	"github.com/ausocean/clf"
	"github.com/ausocean/clf/version"
)

// clfLegalOps is the set of operator types CLF (any version) can
// express at all; Reference and CDL are legal at every CLF version,
// Log/Gamma only from CLF 3.0 (checked separately in requiredVersion).
var clfLegalOps = map[clf.OpType]bool{
	clf.OpMatrix:    true,
	clf.OpLut1D:     true,
	clf.OpLut3D:     true,
	clf.OpRange:     true,
	clf.OpCDL:       true,
	clf.OpReference: true,
	clf.OpLog:       true,
	clf.OpGamma:     true,
}

// opMinCTFVersion is the minimum CTF version whose dispatch table
// knows how to read back op, independent of dialect. This mirrors the
// version-indexed dispatch table used for reading, inverted: a style
// introduced at version V forces the writer to declare at least V.
func opMinCTFVersion(op clf.Operator) version.Version {
	switch o := op.(type) {
	case *clf.Matrix:
		return version.CTF1_3
	case *clf.Lut1D:
		if o.Hue != clf.HueAdjustNone {
			return version.CTF1_4
		}
		return version.CTF1_3
	case *clf.Lut3D:
		return version.CTF1_3
	case *clf.Range:
		return version.CTF1_3
	case *clf.CDL:
		return version.CTF1_3
	case *clf.Reference:
		return version.CTF1_3
	case *clf.Log:
		return version.CTF1_7
	case *clf.Gamma:
		if len(o.Params) == 4 {
			return version.CTF1_8
		}
		switch o.Style {
		case clf.GammaBasicMirrorFwd, clf.GammaBasicMirrorRev,
			clf.GammaBasicPassThruFwd, clf.GammaBasicPassThruRev,
			clf.GammaMoncurveMirrorFwd, clf.GammaMoncurveMirrorRev:
			return version.CTF2_0
		}
		return version.CTF1_3
	case *clf.ExposureContrast:
		return version.CTF1_7
	case *clf.FixedFunction:
		return version.CTF2_0
	case *clf.Function:
		return version.CTF2_0
	case *clf.GradingPrimary:
		return version.CTF2_0
	case *clf.GradingRGBCurve:
		return version.CTF2_0
	case *clf.GradingTone:
		return version.CTF2_0
	default:
		return version.MaxCTF
	}
}

// requiredVersion computes the minimum CTF version that can express
// every operator in pl, clamped up to at least pl's originally-read
// version (a file never gets written back at an older version than it
// was read at, since downgrading could silently drop fields the
// reader already accepted).
func requiredVersion(pl *clf.ProcessList) version.Version {
	min := version.CTF1_3
	for _, op := range pl.Ops {
		v := opMinCTFVersion(op)
		if v.Compare(min) > 0 {
			min = v
		}
	}
	if pl.CTFVersion.Compare(min) > 0 {
		min = pl.CTFVersion
	}
	return min
}

// clfVersionFor maps a required CTF version back onto the CLF version
// whose dispatch table covers it, inverting version.CLFToCTF's
// two-tier mapping (CLF<=2.0 reads as CTF1.7, CLF>2.0 reads as CTF2.0).
func clfVersionFor(requiredCTF version.Version) version.Version {
	if requiredCTF.AtMost(version.CTF1_7) {
		return version.CLF2_0
	}
	return version.CLF3_0
}

// checkCLFLegal verifies every operator in pl can be expressed in the
// CLF dialect, failing UnsupportedInCLF on the first operator that
// cannot, e.g. FixedFunction or GradingPrimary.
func checkCLFLegal(pl *clf.ProcessList) error {
	for _, op := range pl.Ops {
		t := op.Type()
		if !clfLegalOps[t] {
			return clf.NewError(clf.UnsupportedInCLF, "", 0,
				"operator "+t.String()+" ("+op.Base().ID+") has no CLF representation")
		}
		if (t == clf.OpLog || t == clf.OpGamma) && clfVersionFor(opMinCTFVersion(op)).AtMost(version.Version{Major: 2, Minor: 0}) {
			return clf.NewError(clf.UnsupportedInCLF, "", 0,
				"operator "+t.String()+" ("+op.Base().ID+") requires CLF 3.0 or later")
		}
		if g, ok := op.(*clf.Gamma); ok && len(g.Params) == 4 {
			return clf.NewError(clf.UnsupportedInCLF, "", 0,
				"Gamma alpha channel ("+g.ID+") is not representable in CLF")
		}
	}
	return nil
}
