package stream

import (
	"testing"
)

func TestStateErrors(t *testing.T) {
	s := NewState()
	if err := s.ProcessEvent(&Event{Type: EventKey, Key: []byte("k")}); err == nil {
		t.Error("expected error for key at top level")
	}
	if err := s.ProcessEvent(&Event{Type: EventEndDict}); err == nil {
		t.Error("expected error for end at top level")
	}
	if err := s.ProcessEvent(&Event{Type: EventBeginList}); err != nil {
		t.Fatal(err)
	}
	if err := s.ProcessEvent(&Event{Type: EventKey, Key: []byte("k")}); err == nil {
		t.Error("expected error for key inside list")
	}
}

func TestStateExpectations(t *testing.T) {
	s := NewState()
	if s.ExpectingKey() || s.ExpectingValue() {
		t.Error("no expectations at top level")
	}
	s.ProcessEvent(&Event{Type: EventBeginDict})
	if !s.ExpectingKey() {
		t.Error("fresh dict expects a key")
	}
	s.ProcessEvent(&Event{Type: EventKey, Key: []byte("k")})
	if !s.ExpectingValue() {
		t.Error("after key, a value is pending")
	}
	s.ProcessEvent(&Event{Type: EventInt, Int: 1})
	if !s.ExpectingKey() {
		t.Error("after value, next key expected")
	}
}

func TestStatePathSequence(t *testing.T) {
	s := NewState()
	steps := []struct {
		ev   Event
		path string
	}{
		{Event{Type: EventBeginList}, ""},
		{Event{Type: EventInt, Int: 1}, "[0]"},
		{Event{Type: EventBeginDict}, "[1]"},
		{Event{Type: EventKey, Key: []byte("a")}, "[1].a"},
		{Event{Type: EventBytes, Bytes: []byte("v")}, "[1].a"},
		{Event{Type: EventEndDict}, "[1]"},
		{Event{Type: EventInt, Int: 2}, "[2]"},
		{Event{Type: EventEndList}, ""},
	}
	for i, step := range steps {
		if err := s.ProcessEvent(&step.ev); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := s.CurrentPath(); got != step.path {
			t.Errorf("step %d (%s): path %q, want %q", i, step.ev.Type, got, step.path)
		}
	}
}

func TestStateEmptyKeyPath(t *testing.T) {
	// the empty byte string is a legal dictionary key and must show up
	// as a path segment, not be mistaken for "no key yet"
	s := NewState()
	steps := []struct {
		ev   Event
		path string
	}{
		{Event{Type: EventBeginList}, ""},
		{Event{Type: EventBeginDict}, "[0]"},
		{Event{Type: EventKey, Key: []byte("")}, "[0]."},
		{Event{Type: EventInt, Int: 1}, "[0]."},
		{Event{Type: EventKey, Key: []byte("k")}, "[0].k"},
	}
	for i, step := range steps {
		if err := s.ProcessEvent(&step.ev); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := s.CurrentPath(); got != step.path {
			t.Errorf("step %d (%s): path %q, want %q", i, step.ev.Type, got, step.path)
		}
	}
	if s.CurrentKey() != "k" {
		t.Errorf("key = %q", s.CurrentKey())
	}
}
