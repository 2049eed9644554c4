/*
NAME
  attrs.go

DESCRIPTION
  attrs.go implements attribute-list helpers shared by every operator
  reader: required/optional lookup, bit-depth and boolean parsing, and
  the "unrecognized attribute is a warning, not an error" policy.

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

import (
	"fmt"
	"strconv"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/numeric"
)

// attrSet is a small ordered lookup over one element's attribute list.
type attrSet struct {
	p     *parser
	line  int
	items []attr
	seen  map[string]bool
}

func newAttrSet(p *parser, line int, items []attr) *attrSet {
	return &attrSet{p: p, line: line, items: items, seen: map[string]bool{}}
}

func (a *attrSet) get(key string) (string, bool) {
	a.seen[key] = true
	for _, it := range a.items {
		if it.Key == key {
			return it.Value, true
		}
	}
	return "", false
}

func (a *attrSet) require(key string) (string, error) {
	v, ok := a.get(key)
	if !ok {
		return "", clf.NewError(clf.MissingAttribute, a.p.file, a.line,
			fmt.Sprintf("missing required attribute %q", key))
	}
	return v, nil
}

func (a *attrSet) float(key string, def float64) (float64, error) {
	v, ok := a.get(key)
	if !ok {
		return def, nil
	}
	f, err := numeric.ParseFloat64([]byte(v), 0, len(v))
	if err != nil {
		return 0, clf.NewError(clf.InvalidNumber, a.p.file, a.line,
			fmt.Sprintf("attribute %q is not a number: %q", key, v))
	}
	return f, nil
}

func (a *attrSet) requireFloat(key string) (float64, error) {
	v, err := a.require(key)
	if err != nil {
		return 0, err
	}
	f, ferr := numeric.ParseFloat64([]byte(v), 0, len(v))
	if ferr != nil {
		return 0, clf.NewError(clf.InvalidNumber, a.p.file, a.line,
			fmt.Sprintf("attribute %q is not a number: %q", key, v))
	}
	return f, nil
}

func (a *attrSet) bool(key string, def bool) (bool, error) {
	v, ok := a.get(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, clf.NewError(clf.InvalidNumber, a.p.file, a.line,
			fmt.Sprintf("attribute %q is not a boolean: %q", key, v))
	}
	return b, nil
}

func (a *attrSet) bitDepth(key string) (clf.BitDepth, error) {
	v, err := a.require(key)
	if err != nil {
		return clf.UnknownBitDepth, err
	}
	bd, ok := clf.ParseBitDepth(v)
	if !ok {
		return clf.UnknownBitDepth, clf.NewError(clf.MissingAttribute, a.p.file, a.line,
			fmt.Sprintf("attribute %q has unrecognized bit depth %q", key, v))
	}
	return bd, nil
}

// warnUnrecognized logs (never fails) any attribute not queried via
// get/require/float/bool/bitDepth: unrecognized attributes are
// warnings, never errors.
func (a *attrSet) warnUnrecognized() {
	if clf.Log == nil {
		return
	}
	for _, it := range a.items {
		if !a.seen[it.Key] {
			clf.Log.Warning("unrecognized attribute", "name", it.Key, "value", it.Value, "line", a.line)
		}
	}
}

func direction(inv bool) clf.Direction {
	if inv {
		return clf.Inverse
	}
	return clf.Forward
}
