package main

import (
	"fmt"
	"io"

	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/parse"

	"github.com/scott-cotton/cli"
)

func bcKeys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	return eachInput(cc, args, func(name string, r io.Reader) error {
		node, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if node == nil {
			return fmt.Errorf("no value")
		}
		if node.Type != ir.DictType {
			return fmt.Errorf("%w: top level value is a %s", ir.ErrBadType, node.Type)
		}
		for i, f := range node.Fields {
			fmt.Fprintf(cc.Out, "%s\t%s\n", f.Bytes, node.Values[i].Type)
		}
		return nil
	})
}
