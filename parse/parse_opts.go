package parse

import (
	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/token"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	maxDepth   int
	strictKeys bool
	maxBytes   int64
	positions  map[*ir.Node]*token.Pos
}

// defaultMaxDepth bounds recursion so adversarial nesting cannot
// exhaust the stack. Real descriptor files are a handful of levels
// deep.
const defaultMaxDepth = 10000

// WithMaxDepth bounds the nesting depth of decoded values.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// WithStrictKeys makes duplicate dictionary keys fail with
// ErrDuplicateKey. The default keeps the last value seen for a
// repeated key.
func WithStrictKeys() ParseOption {
	return func(o *parseOpts) { o.strictKeys = true }
}

// WithMaxBytes caps declared byte string lengths, see
// token.TokenMaxBytes.
func WithMaxBytes(n int64) ParseOption {
	return func(o *parseOpts) { o.maxBytes = n }
}

// WithPositions records the input position of each decoded node in m.
func WithPositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func (o *parseOpts) tokenOpts() []token.TokenOpt {
	if o.maxBytes > 0 {
		return []token.TokenOpt{token.TokenMaxBytes(o.maxBytes)}
	}
	return nil
}
