/*
NAME
  xmlevent.go

DESCRIPTION
  xmlevent.go declares the XmlEvents collaborator contract: the core
  never parses XML bytes itself, it only consumes a caller-supplied
  stream of start/end/character events with 1-based
  line numbers. package xmlsrc supplies the reference implementation
  over encoding/xml.

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

// EventKind distinguishes the three XML event shapes the parser reacts
// to.
type EventKind int

const (
	StartElementEvent EventKind = iota
	EndElementEvent
	CharsEvent
)

// Attr is one (key, value) XML attribute, in document order.
type Attr struct {
	Key, Value string
}

// XMLEvent is one event in the stream the parser drives. Only the
// fields relevant to Kind are populated.
type XMLEvent struct {
	Kind  EventKind
	Name  string // StartElementEvent, EndElementEvent
	Attrs []Attr // StartElementEvent
	Chars []byte // CharsEvent; owned by the source, valid only until Next is called again
	Line  int    // 1-based
}

// EventSource is an iterator over an XML event stream. Next returns
// ok=false (with a zero error) when the stream is exhausted.
type EventSource interface {
	Next() (ev XMLEvent, ok bool, err error)
}

// EventSourceFunc produces an EventSource over a byte slice. This is
// the injected collaborator: the core never imports an XML decoder
// itself, only this function type.
type EventSourceFunc func(data []byte) (EventSource, error)
