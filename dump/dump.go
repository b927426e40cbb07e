// Package dump renders decoded value trees for humans. It is an
// inspection aid, not an encoder: output is not bencode and does not
// round-trip.
package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/bencode-format/go-bencode/ir"
)

type DumpState struct {
	depth, indent int
	maxBytes      int

	colorType ir.Type
	colorAttr ColorAttr
	Color     func(ir.Type, ColorAttr, string) string
}

func Dump(node *ir.Node, w io.Writer, opts ...DumpOption) error {
	es := &DumpState{
		indent:   2,
		maxBytes: 32,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := dump(node, w, es); err != nil {
		return err
	}
	return writeString(w, es, "\n")
}

func dump(node *ir.Node, w io.Writer, es *DumpState) error {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.StringType:
		es.colorType, es.colorAttr = ir.StringType, ValueColor
		return writeString(w, es, renderBytes(node.Bytes, es.maxBytes))
	case ir.IntegerType:
		es.colorType, es.colorAttr = ir.IntegerType, ValueColor
		return writeString(w, es, strconv.FormatInt(node.Int64, 10))
	case ir.ListType:
		return dumpList(node, w, es)
	case ir.DictType:
		return dumpDict(node, w, es)
	}
	return fmt.Errorf("cannot dump node type %s", node.Type)
}

func dumpList(node *ir.Node, w io.Writer, es *DumpState) error {
	es.colorType, es.colorAttr = ir.ListType, SepColor
	if len(node.Values) == 0 {
		return writeString(w, es, "[]")
	}
	if err := writeString(w, es, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := dump(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			es.colorType, es.colorAttr = ir.ListType, SepColor
			if err := writeString(w, es, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	es.colorType, es.colorAttr = ir.ListType, SepColor
	return writeString(w, es, "]")
}

func dumpDict(node *ir.Node, w io.Writer, es *DumpState) error {
	es.colorType, es.colorAttr = ir.DictType, SepColor
	if len(node.Fields) == 0 {
		return writeString(w, es, "{}")
	}
	if err := writeString(w, es, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		es.colorType, es.colorAttr = ir.DictType, FieldColor
		if err := writeString(w, es, renderKey(f.Bytes)); err != nil {
			return err
		}
		es.colorType, es.colorAttr = ir.DictType, SepColor
		if err := writeString(w, es, ": "); err != nil {
			return err
		}
		if err := dump(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	es.colorType, es.colorAttr = ir.DictType, SepColor
	return writeString(w, es, "}")
}

// renderBytes shows text as a quoted string and anything else as a
// hex preview with its length.
func renderBytes(d []byte, maxBytes int) string {
	if isText(d) {
		return strconv.Quote(string(d))
	}
	if maxBytes > 0 && len(d) > maxBytes {
		return fmt.Sprintf("0x%s... (%d bytes)", hex.EncodeToString(d[:maxBytes]), len(d))
	}
	return "0x" + hex.EncodeToString(d)
}

func renderKey(d []byte) string {
	if isText(d) {
		return string(d)
	}
	return "0x" + hex.EncodeToString(d)
}

func isText(d []byte) bool {
	if !utf8.Valid(d) {
		return false
	}
	for _, r := range string(d) {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}

func writeIndent(w io.Writer, es *DumpState) error {
	return writeString(w, es, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, es *DumpState, s string) error {
	if es.Color != nil {
		s = es.Color(es.colorType, es.colorAttr, s)
	}
	_, err := io.WriteString(w, s)
	return err
}
