package stream

import (
	"fmt"
	"io"

	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/token"
)

// Decoder provides structural event-based decoding. It validates
// structure iteratively, so nesting depth costs no goroutine stack.
type Decoder struct {
	source *token.TokenSource
	state  *State
	opts   []token.TokenOpt
}

// NewDecoder creates a new Decoder reading from r.
func NewDecoder(r io.Reader, opts ...token.TokenOpt) *Decoder {
	return &Decoder{
		source: token.NewTokenSource(r, opts...),
		state:  NewState(),
		opts:   opts,
	}
}

// ReadEvent reads the next structural event from the stream. Returns
// io.EOF when input is exhausted at top level; exhaustion inside a
// structure is token.ErrUnexpectedEnd.
func (d *Decoder) ReadEvent() (*Event, error) {
	tok, err := d.source.Next()
	if err != nil {
		return nil, err
	}
	event, err := d.tokenToEvent(&tok)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, io.EOF
	}
	if err := d.state.ProcessEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// tokenToEvent converts a token to an Event, consulting the state to
// distinguish dictionary keys from values and to resolve end markers.
// A nil event with nil error signals clean end of input.
func (d *Decoder) tokenToEvent(tok *token.Token) (*Event, error) {
	switch tok.Type {
	case token.TEOF:
		if d.state.Depth() != 0 {
			return nil, token.NewTokenizeErr(token.ErrUnexpectedEnd, tok.Pos)
		}
		return nil, nil

	case token.TListStart:
		if err := d.checkNotKey(tok); err != nil {
			return nil, err
		}
		return &Event{Type: EventBeginList}, nil

	case token.TDictStart:
		if err := d.checkNotKey(tok); err != nil {
			return nil, err
		}
		return &Event{Type: EventBeginDict}, nil

	case token.TEnd:
		if d.state.Depth() == 0 {
			return nil, token.UnexpectedErr("'e'", tok.Pos)
		}
		if d.state.ExpectingValue() {
			// a key without its value
			return nil, token.NewTokenizeErr(token.ErrUnexpectedEnd, tok.Pos)
		}
		if d.state.IsInDict() {
			return &Event{Type: EventEndDict}, nil
		}
		return &Event{Type: EventEndList}, nil

	case token.TByteString:
		if d.state.ExpectingKey() {
			return &Event{Type: EventKey, Key: tok.Bytes}, nil
		}
		return &Event{Type: EventBytes, Bytes: tok.Bytes}, nil

	case token.TInteger:
		if err := d.checkNotKey(tok); err != nil {
			return nil, err
		}
		return &Event{Type: EventInt, Int: tok.Int64}, nil
	}
	return nil, &Error{Msg: "unexpected token type: " + tok.Type.String()}
}

func (d *Decoder) checkNotKey(tok *token.Token) error {
	if d.state.ExpectingKey() {
		return fmt.Errorf("%w: %s at %s", ir.ErrInvalidDictKey, tok.Type, tok.Pos)
	}
	return nil
}

// Queryable State Methods (delegate to internal State)

// Depth returns the current nesting depth (0 = top level).
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// CurrentPath returns the current path (e.g., "", "key", "key[0]").
func (d *Decoder) CurrentPath() string {
	return d.state.CurrentPath()
}

// ParentPath returns the parent path (one level up).
func (d *Decoder) ParentPath() string {
	return d.state.ParentPath()
}

// IsInDict returns true if currently inside a dictionary.
func (d *Decoder) IsInDict() bool {
	return d.state.IsInDict()
}

// IsInList returns true if currently inside a list.
func (d *Decoder) IsInList() bool {
	return d.state.IsInList()
}

// CurrentKey returns the current dictionary key (if in a dictionary).
func (d *Decoder) CurrentKey() string {
	return d.state.CurrentKey()
}

// CurrentIndex returns the current list index (if in a list).
func (d *Decoder) CurrentIndex() int {
	return d.state.CurrentIndex()
}

// Offset returns the number of input bytes consumed.
func (d *Decoder) Offset() int64 {
	return d.source.Offset()
}

// Reset resets the decoder to read from a new reader.
func (d *Decoder) Reset(r io.Reader) {
	d.source = token.NewTokenSource(r, d.opts...)
	d.state = NewState()
}
