package token

import (
	"fmt"
	"strconv"
)

// Pos is a position in the input stream. Bencode payloads are binary,
// so positions are byte offsets; Context carries a snippet of recently
// consumed bytes for error messages.
type Pos struct {
	Off     int64
	Context []byte
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Context) > 0 {
		sample = string(p.Context)
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s` at offset %d", sample, p.Off)
}
