package stream

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/token"

	"github.com/google/go-cmp/cmp"
)

func readAll(t *testing.T, input string) []Event {
	t.Helper()
	dec := NewDecoder(strings.NewReader(input))
	var events []Event
	for {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		events = append(events, *ev)
	}
}

func TestDecoderEvents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"empty dict", "de", []Event{
			{Type: EventBeginDict},
			{Type: EventEndDict},
		}},
		{"empty list", "le", []Event{
			{Type: EventBeginList},
			{Type: EventEndList},
		}},
		{"scalars", "i7e4:spam", []Event{
			{Type: EventInt, Int: 7},
			{Type: EventBytes, Bytes: []byte("spam")},
		}},
		{"dict", "d3:cow3:mooe", []Event{
			{Type: EventBeginDict},
			{Type: EventKey, Key: []byte("cow")},
			{Type: EventBytes, Bytes: []byte("moo")},
			{Type: EventEndDict},
		}},
		{"nested", "d1:ali1eee", []Event{
			{Type: EventBeginDict},
			{Type: EventKey, Key: []byte("a")},
			{Type: EventBeginList},
			{Type: EventInt, Int: 1},
			{Type: EventEndList},
			{Type: EventEndDict},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAll(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecoderEOF(t *testing.T) {
	dec := NewDecoder(strings.NewReader("de"))
	if _, err := dec.ReadEvent(); err != nil {
		t.Fatal(err)
	}
	if _, err := dec.ReadEvent(); err != nil {
		t.Fatal(err)
	}
	if _, err := dec.ReadEvent(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	// and it stays EOF
	if _, err := dec.ReadEvent(); err != io.EOF {
		t.Errorf("expected io.EOF again, got %v", err)
	}
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"integer key", "di5ei5ee", ir.ErrInvalidDictKey},
		{"list key", "dlei5ee", ir.ErrInvalidDictKey},
		{"dict key", "ddee", ir.ErrInvalidDictKey},
		{"end at top level", "e", token.ErrUnexpectedToken},
		{"key without value", "d3:cowe", token.ErrUnexpectedEnd},
		{"truncated structure", "l4:spam", token.ErrUnexpectedEnd},
		{"truncated token", "5:ab", token.ErrUnexpectedEnd},
		{"bad integer", "i2x3e", token.ErrInvalidInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tt.input))
			var err error
			for err == nil {
				_, err = dec.ReadEvent()
			}
			if err == io.EOF {
				t.Fatal("expected error, got clean EOF")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoderState(t *testing.T) {
	dec := NewDecoder(strings.NewReader("d4:infod5:filesll5:a.txteeee"))

	step := func(wantType EventType) *Event {
		t.Helper()
		ev, err := dec.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Type != wantType {
			t.Fatalf("expected %s, got %s", wantType, ev.Type)
		}
		return ev
	}

	step(EventBeginDict)
	if dec.Depth() != 1 || !dec.IsInDict() {
		t.Errorf("depth=%d inDict=%v", dec.Depth(), dec.IsInDict())
	}
	step(EventKey)
	if dec.CurrentKey() != "info" || dec.CurrentPath() != "info" {
		t.Errorf("key=%q path=%q", dec.CurrentKey(), dec.CurrentPath())
	}
	step(EventBeginDict)
	step(EventKey)
	if dec.CurrentPath() != "info.files" {
		t.Errorf("path=%q", dec.CurrentPath())
	}
	step(EventBeginList)
	step(EventBeginList)
	step(EventBytes)
	if dec.Depth() != 4 {
		t.Errorf("depth=%d", dec.Depth())
	}
	if dec.CurrentPath() != "info.files[0][0]" {
		t.Errorf("path=%q", dec.CurrentPath())
	}
	if dec.ParentPath() != "info.files[0]" {
		t.Errorf("parent=%q", dec.ParentPath())
	}
	if !dec.IsInList() || dec.CurrentIndex() != 0 {
		t.Errorf("inList=%v index=%d", dec.IsInList(), dec.CurrentIndex())
	}
	step(EventEndList)
	step(EventEndList)
	step(EventEndDict)
	step(EventEndDict)
	if dec.Depth() != 0 {
		t.Errorf("depth=%d after close", dec.Depth())
	}
}

func TestDecoderReset(t *testing.T) {
	dec := NewDecoder(strings.NewReader("le"))
	if _, err := dec.ReadEvent(); err != nil {
		t.Fatal(err)
	}
	dec.Reset(strings.NewReader("i1e"))
	ev, err := dec.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Type != EventInt || ev.Int != 1 {
		t.Errorf("got %v", ev)
	}
	if dec.Depth() != 0 {
		t.Errorf("depth=%d after reset", dec.Depth())
	}
}

func TestDecoderOffset(t *testing.T) {
	dec := NewDecoder(strings.NewReader("4:spam"))
	if _, err := dec.ReadEvent(); err != nil {
		t.Fatal(err)
	}
	if dec.Offset() != 6 {
		t.Errorf("offset=%d, want 6", dec.Offset())
	}
}
