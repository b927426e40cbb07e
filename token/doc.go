// Package token tokenizes bencoded input.
//
// Bencode has four token shapes:
//
//	<decimal-length>:<raw-bytes>   byte string
//	i<decimal-digits>e             signed integer
//	l                              list start
//	d                              dictionary start
//
// plus the shared end marker 'e' closing the nearest open list or
// dictionary. A TokenSource reads tokens one at a time from an
// io.Reader; it does not track nesting, which is the parse package's
// job. End of input at a token boundary is reported as a TEOF token,
// while end of input inside a token is an error.
package token
