/*
NAME
  metadata.go

DESCRIPTION
  metadata.go implements FormatMetadata, the recursively nested
  (name, value, attributes, children) tree attached to a ProcessList
  and to every operator. Child ordering is preserved on round-trip, the
  same order-preserving discipline container/mts/meta.Data uses for its
  string-keyed metadata map.

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

// FormatMetadata is an arbitrary, order-preserving nested XML subtree
// attached to a ProcessList or an Operator. The parser stores whatever
// it finds without interpretation; only the writer and the caller give
// it meaning.
type FormatMetadata struct {
	Name       string
	Value      string
	Attributes [][2]string // ordered (key, value) pairs, as attribute order is also preserved.
	Children   []*FormatMetadata
}

// NewMetadata returns a named, empty FormatMetadata node.
func NewMetadata(name string) *FormatMetadata {
	return &FormatMetadata{Name: name}
}

// AddChild appends a child node, preserving document order.
func (m *FormatMetadata) AddChild(child *FormatMetadata) {
	m.Children = append(m.Children, child)
}

// SetAttr appends or updates an attribute, preserving first-seen order.
func (m *FormatMetadata) SetAttr(key, val string) {
	for i, kv := range m.Attributes {
		if kv[0] == key {
			m.Attributes[i][1] = val
			return
		}
	}
	m.Attributes = append(m.Attributes, [2]string{key, val})
}

// Attr returns the value of the named attribute and whether it exists.
func (m *FormatMetadata) Attr(key string) (string, bool) {
	for _, kv := range m.Attributes {
		if kv[0] == key {
			return kv[1], true
		}
	}
	return "", false
}

// Clone returns a deep copy of m (or nil, for a nil receiver).
func (m *FormatMetadata) Clone() *FormatMetadata {
	if m == nil {
		return nil
	}
	out := &FormatMetadata{Name: m.Name, Value: m.Value}
	if len(m.Attributes) > 0 {
		out.Attributes = make([][2]string, len(m.Attributes))
		copy(out.Attributes, m.Attributes)
	}
	for _, c := range m.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}

// Equal reports whether m and other describe the same metadata tree,
// ignoring nothing but XML-insignificant whitespace differences that
// the caller has already trimmed. Used by the round-trip test property.
func (m *FormatMetadata) Equal(other *FormatMetadata) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Name != other.Name || m.Value != other.Value {
		return false
	}
	if len(m.Attributes) != len(other.Attributes) {
		return false
	}
	for i := range m.Attributes {
		if m.Attributes[i] != other.Attributes[i] {
			return false
		}
	}
	if len(m.Children) != len(other.Children) {
		return false
	}
	for i := range m.Children {
		if !m.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
