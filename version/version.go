/*
NAME
  version.go

DESCRIPTION
  version.go implements the (major, minor) version model shared by CTF
  and CLF dialects, and the dialect mapping between them.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package version implements the ordered (major, minor) version model
// used to select operator readers and writers across the CTF and CLF
// dialects.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a (major, minor) pair with a total order.
type Version struct {
	Major int
	Minor int
}

// Well-known versions.
var (
	CTF1_3 = Version{1, 3}
	CTF1_4 = Version{1, 4}
	CTF1_7 = Version{1, 7}
	CTF1_8 = Version{1, 8}
	CTF2_0 = Version{2, 0}

	CLF2_0 = Version{2, 0}
	CLF3_0 = Version{3, 0}

	// MaxCTF and MaxCLF are the highest versions this reader knows how
	// to dispatch.
	MaxCTF = CTF2_0
	MaxCLF = CLF3_0
)

// Parse parses a "M" or "M.N" version string; a missing minor
// component defaults to 0.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("version: empty string")
	}
	parts := strings.SplitN(s, ".", 2)
	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("version: invalid major in %q: %w", s, err)
	}
	min := 0
	if len(parts) == 2 && parts[1] != "" {
		min, err = strconv.Atoi(parts[1])
		if err != nil {
			return Version{}, fmt.Errorf("version: invalid minor in %q: %w", s, err)
		}
	}
	return Version{Major: maj, Minor: min}, nil
}

// String formats the version as "M.N".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater
// than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor != other.Minor:
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// AtMost reports whether v <= other.
func (v Version) AtMost(other Version) bool { return v.Compare(other) <= 0 }

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }

// InRange reports whether lo <= v <= hi.
func (v Version) InRange(lo, hi Version) bool {
	return v.AtLeast(lo) && v.AtMost(hi)
}

// CLFToCTF maps a CLF version onto the CTF version whose operator
// dispatch table applies: CLF <= 2.0 reads as CTF 1.7; CLF > 2.0 reads
// as CTF 2.0. This is the only point where dialect ever affects
// version-keyed dispatch; everything downstream keys on the returned
// CTF version plus the isCLF flag.
func CLFToCTF(clf Version) Version {
	if clf.AtMost(CLF2_0) {
		return CTF1_7
	}
	return CTF2_0
}
