package birdtab

// EventType identifies the kind of markup event.
type EventType int

// EventType constants.
const (
	StartTagEvent EventType = iota + 1
	TextEvent
	EndTagEvent
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case StartTagEvent:
		return "start"
	case TextEvent:
		return "text"
	case EndTagEvent:
		return "end"
	default:
		return "unknown"
	}
}

// Attr is a single markup attribute.
type Attr struct {
	Key string
	Val string
}

// Event is one item of a markup token stream.
type Event struct {
	Type  EventType
	Tag   string // lowercase tag name; empty for text events
	Attrs []Attr // start tags only
	Text  string // text events only, unmodified
}

// Attr returns the value of the first attribute named key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// StartTag returns a start tag event.
func StartTag(tag string, attrs ...Attr) Event {
	return Event{Type: StartTagEvent, Tag: tag, Attrs: attrs}
}

// EndTag returns an end tag event.
func EndTag(tag string) Event {
	return Event{Type: EndTagEvent, Tag: tag}
}

// Text returns a text event.
func Text(s string) Event {
	return Event{Type: TextEvent, Text: s}
}
