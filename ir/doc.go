// Package ir defines the in-memory representation of decoded bencode
// values.
//
// A decoded value is a tree of Nodes. Each Node has exactly one of four
// types: a byte string, a signed 64-bit integer, a list, or a dictionary.
// Dictionary entries are stored in canonical order, sorted by the raw
// bytes of their keys, regardless of the order they appeared on the wire.
//
// Nodes carry a total order (see Compare) so that they can be sorted,
// used as map keys via their canonical form, and compared in tests.
//
// # Related Packages
//
//   - github.com/signadot/bencode-format/go-bencode/token - tokenization
//   - github.com/signadot/bencode-format/go-bencode/parse - build Nodes from input
//   - github.com/signadot/bencode-format/go-bencode/dump - render Nodes for humans
package ir
