package stream

import "fmt"

// Event represents a structural event from the decoder. Low-level
// token bookkeeping (end markers matching, key/value alternation) is
// resolved before an event is emitted.
type Event struct {
	Type EventType

	// Key is the raw dictionary key for EventKey.
	Key []byte

	// Bytes is the payload of an EventBytes value.
	Bytes []byte

	// Int is the payload of an EventInt value.
	Int int64
}

// IsValueStart returns true if this event starts a value (as opposed
// to a key or an end marker). Value-starting events are: BeginDict,
// BeginList, Bytes, Int.
func (e *Event) IsValueStart() bool {
	return e.Type == EventBeginDict ||
		e.Type == EventBeginList ||
		e.Type == EventBytes ||
		e.Type == EventInt
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginDict EventType = iota
	EventEndDict
	EventBeginList
	EventEndList
	EventKey
	EventBytes
	EventInt
)

func (t EventType) String() string {
	switch t {
	case EventBeginDict:
		return "BeginDict"
	case EventEndDict:
		return "EndDict"
	case EventBeginList:
		return "BeginList"
	case EventEndList:
		return "EndList"
	case EventKey:
		return "Key"
	case EventBytes:
		return "Bytes"
	case EventInt:
		return "Int"
	default:
		return "Unknown"
	}
}

func (t EventType) IsKey() bool {
	return t == EventKey
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"BeginDict": EventBeginDict,
		"EndDict":   EventEndDict,
		"BeginList": EventBeginList,
		"EndList":   EventEndList,
		"Key":       EventKey,
		"Bytes":     EventBytes,
		"Int":       EventInt,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
