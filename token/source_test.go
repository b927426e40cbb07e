package token

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNextByteString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "4:spam", "spam"},
		{"empty", "0:", ""},
		{"binary", "3:\x00\x01\xff", "\x00\x01\xff"},
		{"long length", "11:hello world", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenSource(strings.NewReader(tt.input))
			tok, err := ts.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != TByteString {
				t.Fatalf("expected TByteString, got %s", tok.Type)
			}
			if string(tok.Bytes) != tt.want {
				t.Errorf("payload = %q, want %q", tok.Bytes, tt.want)
			}
			if got := ts.Offset(); got != int64(len(tt.input)) {
				t.Errorf("Offset = %d, want %d", got, len(tt.input))
			}
		})
	}
}

func TestNextInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"zero", "i0e", 0},
		{"positive", "i42e", 42},
		{"negative", "i-5e", -5},
		{"int64 min", "i-9223372036854775808e", -9223372036854775808},
		{"int64 max", "i9223372036854775807e", 9223372036854775807},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenSource(strings.NewReader(tt.input))
			tok, err := ts.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != TInteger {
				t.Fatalf("expected TInteger, got %s", tok.Type)
			}
			if tok.Int64 != tt.want {
				t.Errorf("value = %d, want %d", tok.Int64, tt.want)
			}
		})
	}
}

func TestNextMarkers(t *testing.T) {
	ts := NewTokenSource(strings.NewReader("lde"))
	for _, want := range []TokenType{TListStart, TDictStart, TEnd, TEOF} {
		tok, err := ts.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Type != want {
			t.Errorf("expected %s, got %s", want, tok.Type)
		}
	}
	// TEOF repeats on further calls
	tok, err := ts.Next()
	if err != nil || tok.Type != TEOF {
		t.Errorf("expected TEOF again, got %s, %v", tok.Type, err)
	}
}

func TestNextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unexpected byte", "x", ErrUnexpectedToken},
		{"short byte string", "5:ab", ErrUnexpectedEnd},
		{"length cut off", "12", ErrUnexpectedEnd},
		{"missing colon", "2x:ab", ErrInvalidLength},
		{"leading zero length", "05:abcde", ErrInvalidLength},
		{"length overflow", "99999999999999999999:", ErrInvalidLength},
		{"huge declared length", "999999999999999999:", ErrUnexpectedEnd},
		{"large length short payload", "99999999999:abc", ErrUnexpectedEnd},
		{"bad integer", "i12ae", ErrInvalidInteger},
		{"empty integer", "ie", ErrInvalidInteger},
		{"dash only", "i-e", ErrInvalidInteger},
		{"integer overflow", "i9223372036854775808e", ErrInvalidInteger},
		{"unterminated integer", "i12", ErrUnexpectedEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenSource(strings.NewReader(tt.input))
			_, err := ts.Next()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNextIOFailure(t *testing.T) {
	ts := NewTokenSource(iotest{})
	_, err := ts.Next()
	if !errors.Is(err, ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
}

type iotest struct{}

func (iotest) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestMaxBytes(t *testing.T) {
	ts := NewTokenSource(strings.NewReader("4:spam"), TokenMaxBytes(3))
	_, err := ts.Next()
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("got %v, want ErrInvalidLength", err)
	}
	ts = NewTokenSource(strings.NewReader("3:egg"), TokenMaxBytes(3))
	tok, err := ts.Next()
	if err != nil || string(tok.Bytes) != "egg" {
		t.Errorf("got %q, %v", tok.Bytes, err)
	}
}

func TestErrPosition(t *testing.T) {
	ts := NewTokenSource(strings.NewReader("4:spami12ae"))
	if _, err := ts.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := ts.Next()
	var tErr *TokenizeErr
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TokenizeErr, got %T", err)
	}
	if tErr.Pos.Off != 6 {
		t.Errorf("error offset = %d, want 6", tErr.Pos.Off)
	}
	if !strings.Contains(err.Error(), "offset 6") {
		t.Errorf("error message lacks offset: %s", err)
	}
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(nil, []byte("d3:cow3:mooe"))
	if err != nil {
		t.Fatal(err)
	}
	types := make([]TokenType, len(toks))
	for i := range toks {
		types[i] = toks[i].Type
	}
	want := []TokenType{TDictStart, TByteString, TByteString, TEnd}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestByteBoundaries(t *testing.T) {
	// tokens must be read with single-byte lookahead: feed the source
	// through a reader returning one byte at a time.
	ts := NewTokenSource(iotest1{r: strings.NewReader("l4:spami7ee")})
	var types []TokenType
	for {
		tok, err := ts.Next()
		if err != nil {
			t.Fatal(err)
		}
		types = append(types, tok.Type)
		if tok.Type == TEOF {
			break
		}
	}
	want := []TokenType{TListStart, TByteString, TInteger, TEnd, TEOF}
	if len(types) != len(want) {
		t.Fatalf("got %v", types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, types[i], want[i])
		}
	}
}

type iotest1 struct {
	r io.Reader
}

func (o iotest1) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestTrailingGarbage(t *testing.T) {
	// bytes after a complete token belong to the next token
	ts := NewTokenSource(bytes.NewReader([]byte("i1e4:spam")))
	tok, err := ts.Next()
	if err != nil || tok.Type != TInteger {
		t.Fatalf("got %s, %v", tok.Type, err)
	}
	tok, err = ts.Next()
	if err != nil || string(tok.Bytes) != "spam" {
		t.Fatalf("got %q, %v", tok.Bytes, err)
	}
}
