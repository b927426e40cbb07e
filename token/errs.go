package token

import (
	"errors"
)

var (
	// ErrInvalidLength marks a byte string whose length prefix is not a
	// valid non-negative decimal, including leading-zero forms.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidInteger marks an integer token whose payload does not
	// parse as a base-10 signed 64-bit integer.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrUnexpectedToken marks a byte that matches no token grammar.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEnd marks input that ends mid-token or mid-structure.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrIO wraps a failure of the underlying byte source, as opposed
	// to malformed input.
	ErrIO = errors.New("read failed")
)
