package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/token"
)

// Parser decodes successive top-level values from a byte stream. It
// owns the underlying token source for its lifetime and is not safe
// for concurrent use.
type Parser struct {
	src  *token.TokenSource
	opts *parseOpts
}

func NewParser(r io.Reader, opts ...ParseOption) *Parser {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return &Parser{
		src:  token.NewTokenSource(r, pOpts.tokenOpts()...),
		opts: pOpts,
	}
}

// Parse decodes the first value of d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader decodes the next value from r.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	return NewParser(r, opts...).Next()
}

// Next returns the next fully materialized top-level value. It returns
// (nil, nil) when the input is exhausted at a token boundary; ending
// inside a value is ErrUnexpectedEnd. A decode either succeeds with
// one complete value or fails atomically.
func (p *Parser) Next() (*ir.Node, error) {
	tok, err := p.src.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TEOF, token.TEnd:
		// no further top-level value
		return nil, nil
	}
	return p.value(tok, 0)
}

func (p *Parser) value(tok token.Token, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %d at %s", ErrMaxDepth, depth, tok.Pos)
	}
	switch tok.Type {
	case token.TByteString:
		return p.track(ir.FromBytes(tok.Bytes), &tok), nil
	case token.TInteger:
		return p.track(ir.FromInt(tok.Int64), &tok), nil
	case token.TListStart:
		return p.list(&tok, depth)
	case token.TDictStart:
		return p.dict(&tok, depth)
	}
	return nil, fmt.Errorf("%w: %s", errInternal, tok.Info())
}

func (p *Parser) list(start *token.Token, depth int) (*ir.Node, error) {
	var elts []*ir.Node
	for {
		tok, err := p.src.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TEnd {
			break
		}
		if tok.Type == token.TEOF {
			return nil, token.NewTokenizeErr(token.ErrUnexpectedEnd, tok.Pos)
		}
		elt, err := p.value(tok, depth+1)
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
	}
	return p.track(ir.FromSlice(elts), start), nil
}

// dict reads children until the end marker and pairs them up
// two-at-a-time: byte string key, then value.
func (p *Parser) dict(start *token.Token, depth int) (*ir.Node, error) {
	var (
		kvs  []ir.KeyVal
		seen map[string]bool
	)
	if p.opts.strictKeys {
		seen = map[string]bool{}
	}
	for {
		tok, err := p.src.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TEnd {
			break
		}
		if tok.Type == token.TEOF {
			return nil, token.NewTokenizeErr(token.ErrUnexpectedEnd, tok.Pos)
		}
		key, err := p.value(tok, depth+1)
		if err != nil {
			return nil, err
		}
		if key.Type != ir.StringType {
			return nil, fmt.Errorf("%w: %s at %s", ir.ErrInvalidDictKey, key.Type, tok.Pos)
		}
		if seen != nil {
			ks := string(key.Bytes)
			if seen[ks] {
				return nil, fmt.Errorf("%w: %q at %s", ErrDuplicateKey, ks, tok.Pos)
			}
			seen[ks] = true
		}
		vTok, err := p.src.Next()
		if err != nil {
			return nil, err
		}
		if vTok.Type == token.TEnd || vTok.Type == token.TEOF {
			// a key without its value
			return nil, token.NewTokenizeErr(token.ErrUnexpectedEnd, vTok.Pos)
		}
		val, err := p.value(vTok, depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return p.track(ir.FromKeyVals(kvs), start), nil
}

func (p *Parser) track(node *ir.Node, tok *token.Token) *ir.Node {
	if p.opts.positions != nil && tok.Pos != nil {
		p.opts.positions[node] = tok.Pos
	}
	return node
}
