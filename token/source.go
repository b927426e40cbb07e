package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// TokenSource provides streaming tokenization from an io.Reader.
// Each call to Next consumes exactly the bytes of one token and leaves
// the source positioned immediately after it. A TokenSource holds no
// cross-call state beyond the byte cursor, so it must not be shared
// between goroutines.
type TokenSource struct {
	reader *bufio.Reader

	// Absolute offset of the next unread byte.
	off int64

	// Sliding window of recently consumed bytes for error context.
	recent []byte

	opt *tokenOpts
}

const maxRecent = 16

// NewTokenSource creates a new TokenSource reading from r.
func NewTokenSource(r io.Reader, opts ...TokenOpt) *TokenSource {
	opt := &tokenOpts{bufSize: defaultBufferSize}
	for _, o := range opts {
		o(opt)
	}
	return &TokenSource{
		reader: bufio.NewReaderSize(r, opt.bufSize),
		opt:    opt,
	}
}

// Offset returns the number of bytes consumed so far.
func (ts *TokenSource) Offset() int64 {
	return ts.off
}

// Next returns the next token. End of input at a token boundary yields
// a TEOF token; end of input inside a token is ErrUnexpectedEnd.
func (ts *TokenSource) Next() (Token, error) {
	pos := ts.pos()
	b, err := ts.readByte()
	if err != nil {
		if err == io.EOF {
			return Token{Type: TEOF, Pos: pos}, nil
		}
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: %v", ErrIO, err), pos)
	}
	switch {
	case b >= '0' && b <= '9':
		return ts.byteString(b, pos)
	case b == 'i':
		return ts.integer(pos)
	case b == 'l':
		return Token{Type: TListStart, Pos: pos}, nil
	case b == 'd':
		return Token{Type: TDictStart, Pos: pos}, nil
	case b == 'e':
		return Token{Type: TEnd, Pos: pos}, nil
	}
	return Token{}, UnexpectedErr(strconv.QuoteRune(rune(b)), pos)
}

// byteString scans <decimal-length>:<raw-bytes> with the first length
// digit already consumed.
func (ts *TokenSource) byteString(first byte, pos *Pos) (Token, error) {
	digits := []byte{first}
	for {
		b, err := ts.readByte()
		if err != nil {
			return Token{}, ts.midTokenErr(err, pos)
		}
		if b == ':' {
			break
		}
		if b < '0' || b > '9' {
			return Token{}, NewTokenizeErr(
				fmt.Errorf("%w: %q in length", ErrInvalidLength, b), pos)
		}
		digits = append(digits, b)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return Token{}, NewTokenizeErr(
			fmt.Errorf("%w: leading zero in %q", ErrInvalidLength, digits), pos)
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return Token{}, NewTokenizeErr(
			fmt.Errorf("%w: %q", ErrInvalidLength, digits), pos)
	}
	if ts.opt.maxBytes > 0 && n > ts.opt.maxBytes {
		return Token{}, NewTokenizeErr(
			fmt.Errorf("%w: %d exceeds cap %d", ErrInvalidLength, n, ts.opt.maxBytes), pos)
	}
	// The payload is read as it arrives: a declared length commits no
	// memory ahead of the input, so a bogus huge length fails with
	// ErrUnexpectedEnd when the source runs dry.
	var body bytes.Buffer
	m, err := io.CopyN(&body, ts.reader, n)
	ts.off += m
	ts.note(body.Bytes())
	if err != nil {
		return Token{}, ts.midTokenErr(err, pos)
	}
	return Token{Type: TByteString, Pos: pos, Bytes: body.Bytes()}, nil
}

// integer scans i<decimal-digits>e with the leading 'i' already
// consumed. Validation of the digits is delegated to strconv.
func (ts *TokenSource) integer(pos *Pos) (Token, error) {
	var digits []byte
	for {
		b, err := ts.readByte()
		if err != nil {
			return Token{}, ts.midTokenErr(err, pos)
		}
		if b == 'e' {
			break
		}
		digits = append(digits, b)
	}
	v, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return Token{}, NewTokenizeErr(
			fmt.Errorf("%w: %q", ErrInvalidInteger, digits), pos)
	}
	return Token{Type: TInteger, Pos: pos, Bytes: digits, Int64: v}, nil
}

func (ts *TokenSource) midTokenErr(err error, pos *Pos) error {
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return NewTokenizeErr(ErrUnexpectedEnd, ts.pos())
	}
	return NewTokenizeErr(fmt.Errorf("%w: %v", ErrIO, err), pos)
}

func (ts *TokenSource) pos() *Pos {
	ctx := make([]byte, len(ts.recent))
	copy(ctx, ts.recent)
	return &Pos{Off: ts.off, Context: ctx}
}

func (ts *TokenSource) readByte() (byte, error) {
	b, err := ts.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	ts.off++
	ts.note([]byte{b})
	return b, nil
}

func (ts *TokenSource) note(consumed []byte) {
	if len(consumed) >= maxRecent {
		ts.recent = append(ts.recent[:0], consumed[len(consumed)-maxRecent:]...)
		return
	}
	ts.recent = append(ts.recent, consumed...)
	if len(ts.recent) > maxRecent {
		ts.recent = ts.recent[len(ts.recent)-maxRecent:]
	}
}
