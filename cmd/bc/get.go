package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/bencode-format/go-bencode/dump"
	"github.com/signadot/bencode-format/go-bencode/ir"
	"github.com/signadot/bencode-format/go-bencode/parse"

	"github.com/scott-cotton/cli"
)

func bcGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path := args[0]
	return eachInput(cc, args[1:], func(name string, r io.Reader) error {
		node, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if node == nil {
			return fmt.Errorf("no value")
		}
		got, err := getPath(node, path)
		if err != nil {
			return err
		}
		return dump.Dump(got, cc.Out, cfg.dumpOpts(cc.Out)...)
	})
}

// getPath traverses dictionary keys separated by '.' and list indices
// in brackets, e.g. "info.files[0].length".
func getPath(node *ir.Node, path string) (*ir.Node, error) {
	res := node
	for _, seg := range strings.Split(path, ".") {
		key, idxs, err := splitSegment(seg)
		if err != nil {
			return nil, err
		}
		if key != "" {
			res, err = res.Lookup(key)
			if err != nil {
				return nil, err
			}
		}
		for _, idx := range idxs {
			res, err = res.Index(idx)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// splitSegment splits "files[0][1]" into "files", [0, 1].
func splitSegment(seg string) (string, []int, error) {
	key, rest, found := strings.Cut(seg, "[")
	if !found {
		return key, nil, nil
	}
	var idxs []int
	for rest != "" {
		digits, tail, found := strings.Cut(rest, "]")
		if !found {
			return "", nil, fmt.Errorf("unterminated index in %q", seg)
		}
		idx, err := strconv.Atoi(digits)
		if err != nil {
			return "", nil, fmt.Errorf("bad index in %q: %w", seg, err)
		}
		idxs = append(idxs, idx)
		rest = strings.TrimPrefix(tail, "[")
		if tail == rest && tail != "" {
			return "", nil, fmt.Errorf("trailing %q in %q", tail, seg)
		}
	}
	return key, idxs, nil
}
