package main

import (
	"fmt"
	"io"

	"github.com/signadot/bencode-format/go-bencode/dump"
	"github.com/signadot/bencode-format/go-bencode/parse"

	"github.com/scott-cotton/cli"
)

func bcDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, r io.Reader) error {
		return dumpReader(cfg, cc.Out, r)
	})
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	opts := append(cfg.dumpOpts(w), dump.WithMaxBytes(cfg.Max))
	p := parse.NewParser(r, cfg.parseOpts()...)
	for i := 0; ; i++ {
		node, err := p.Next()
		if err != nil {
			return fmt.Errorf("error decoding value %d: %w", i, err)
		}
		if node == nil {
			return nil
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := dump.Dump(node, w, opts...); err != nil {
			return err
		}
	}
}
