// Package parse builds IR value trees from bencoded input.
//
// # Usage
//
//	// Decode one value from bytes
//	node, err := parse.Parse([]byte("d3:cow3:moo4:spam4:eggse"))
//	if err != nil {
//	    return err
//	}
//
//	// Decode successive top-level values from a stream
//	p := parse.NewParser(r)
//	for {
//	    node, err := p.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if node == nil {
//	        break // input exhausted
//	    }
//	    ...
//	}
//
// Dictionary entries come back sorted by raw key bytes regardless of
// wire order. Duplicate keys are resolved last-write-wins unless
// WithStrictKeys is given.
//
// # Related Packages
//
//   - github.com/signadot/bencode-format/go-bencode/ir - IR representation
//   - github.com/signadot/bencode-format/go-bencode/token - tokenization
//   - github.com/signadot/bencode-format/go-bencode/stream - event-based decoding
package parse
