package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TByteString TokenType = iota
	TInteger
	TListStart
	TDictStart
	TEnd
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TByteString: "TByteString",
		TInteger:    "TInteger",
		TListStart:  "TListStart",
		TDictStart:  "TDictStart",
		TEnd:        "TEnd",
		TEOF:        "TEOF",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  *Pos

	// Bytes is the payload of a TByteString token and the raw digits
	// of a TInteger token.
	Bytes []byte

	// Int64 is the parsed value of a TInteger token.
	Int64 int64
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TByteString:
		return string(t.Bytes)
	case TInteger:
		return strconv.FormatInt(t.Int64, 10)
	case TListStart:
		return "l"
	case TDictStart:
		return "d"
	case TEnd:
		return "e"
	case TEOF:
		return ""
	}
	return ""
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: %s", ErrUnexpectedToken, what), p)
}
