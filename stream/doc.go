// Package stream provides structural event-based decoding of bencoded
// input.
//
// A Decoder turns the raw token stream into events (BeginDict, Key,
// Bytes, Int, EndDict, ...) without materializing a value tree, for
// consumers who want manual control over traversal or who handle
// inputs too large to hold in memory. Structural validation (balanced
// ends, byte string keys, key/value pairing) happens as events are
// read.
package stream
