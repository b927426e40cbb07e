package token

type TokenOpt func(*tokenOpts)

type tokenOpts struct {
	bufSize  int
	maxBytes int64
}

const defaultBufferSize = 4096

// TokenBufferSize sets the read buffer size of a TokenSource. Buffering
// changes only throughput; token boundaries and errors are unaffected.
func TokenBufferSize(n int) TokenOpt {
	return func(o *tokenOpts) { o.bufSize = n }
}

// TokenMaxBytes caps the declared length of byte string tokens. Lengths
// beyond the cap fail with ErrInvalidLength instead of allocating.
// Zero means no cap.
func TokenMaxBytes(n int64) TokenOpt {
	return func(o *tokenOpts) { o.maxBytes = n }
}
