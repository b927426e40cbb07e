package dump

import (
	"bytes"
	"strings"

	"github.com/signadot/bencode-format/go-bencode/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
