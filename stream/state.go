package stream

import (
	"strconv"
	"strings"
)

type containerKind int

const (
	kindDict containerKind = iota
	kindList
)

type frame struct {
	kind    containerKind
	key     string // most recent key (dict frames)
	haveKey bool   // key read, value pending (dict frames)
	keySet  bool   // any key seen in this frame; key may be empty
	index   int    // index of the current element (list frames)
}

// State tracks structural position while events are processed:
// nesting depth, container kinds, current key or index, and the path
// from the root.
type State struct {
	stack []frame
}

func NewState() *State {
	return &State{}
}

// ProcessEvent updates the state with ev. Events are assumed already
// validated by the decoder.
func (s *State) ProcessEvent(ev *Event) error {
	switch ev.Type {
	case EventBeginDict:
		s.markValue()
		s.stack = append(s.stack, frame{kind: kindDict})
	case EventBeginList:
		s.markValue()
		s.stack = append(s.stack, frame{kind: kindList, index: -1})
	case EventEndDict, EventEndList:
		if len(s.stack) == 0 {
			return &Error{Msg: "end event at top level"}
		}
		s.stack = s.stack[:len(s.stack)-1]
	case EventKey:
		if len(s.stack) == 0 || s.top().kind != kindDict {
			return &Error{Msg: "key event outside dictionary"}
		}
		s.top().key = string(ev.Key)
		s.top().haveKey = true
		s.top().keySet = true
	case EventBytes, EventInt:
		s.markValue()
	}
	return nil
}

// markValue records that a value begins at the current position.
func (s *State) markValue() {
	if len(s.stack) == 0 {
		return
	}
	switch top := s.top(); top.kind {
	case kindDict:
		top.haveKey = false
	case kindList:
		top.index++
	}
}

func (s *State) top() *frame {
	return &s.stack[len(s.stack)-1]
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// CurrentPath returns the path to the current position, with dict
// keys joined by dots and list indices in brackets, e.g.
// "info.files[0].length".
func (s *State) CurrentPath() string {
	var b strings.Builder
	for i := range s.stack {
		f := &s.stack[i]
		switch f.kind {
		case kindDict:
			if !f.keySet {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(f.key)
		case kindList:
			if f.index < 0 {
				continue
			}
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(f.index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// ParentPath returns the path one level up.
func (s *State) ParentPath() string {
	if len(s.stack) == 0 {
		return ""
	}
	sub := &State{stack: s.stack[:len(s.stack)-1]}
	return sub.CurrentPath()
}

// IsInDict returns true if currently inside a dictionary.
func (s *State) IsInDict() bool {
	return len(s.stack) > 0 && s.top().kind == kindDict
}

// IsInList returns true if currently inside a list.
func (s *State) IsInList() bool {
	return len(s.stack) > 0 && s.top().kind == kindList
}

// ExpectingKey returns true if the next value event must be a
// dictionary key.
func (s *State) ExpectingKey() bool {
	return s.IsInDict() && !s.top().haveKey
}

// ExpectingValue returns true if a dictionary key has been read and
// its value is pending.
func (s *State) ExpectingValue() bool {
	return s.IsInDict() && s.top().haveKey
}

// CurrentKey returns the current dictionary key (if in a dictionary).
func (s *State) CurrentKey() string {
	if !s.IsInDict() {
		return ""
	}
	return s.top().key
}

// CurrentIndex returns the current list index (if in a list).
func (s *State) CurrentIndex() int {
	if !s.IsInList() {
		return -1
	}
	return s.top().index
}
