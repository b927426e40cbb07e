package token

import "bytes"

// Tokenize appends all tokens of src to dst, for callers who already
// hold the full input in memory. The terminating TEOF token is not
// included.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	ts := NewTokenSource(bytes.NewReader(src), opts...)
	for {
		tok, err := ts.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TEOF {
			return dst, nil
		}
		dst = append(dst, tok)
	}
}
