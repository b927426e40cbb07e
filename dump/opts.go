package dump

type DumpOption func(*DumpState)

// Depth sets the initial indentation depth.
func Depth(n int) DumpOption {
	return func(es *DumpState) { es.depth = n }
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) DumpOption {
	return func(es *DumpState) { es.indent = n }
}

// WithMaxBytes truncates binary byte strings to n preview bytes.
// Zero disables truncation.
func WithMaxBytes(n int) DumpOption {
	return func(es *DumpState) { es.maxBytes = n }
}

// WithColors enables colorized output.
func WithColors(c *Colors) DumpOption {
	return func(es *DumpState) { es.Color = c.Color }
}
