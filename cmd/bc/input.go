package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/klauspost/compress/gzip"
)

// eachInput runs f over every input file, or over stdin when no files
// are given. "-" names stdin.
func eachInput(cc *cli.Context, args []string, f func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		r, err := maybeGunzip(cc.In)
		if err != nil {
			return err
		}
		return f("-", r)
	}
	for _, file := range args {
		if err := inputFile(cc, file, f); err != nil {
			return err
		}
	}
	return nil
}

func inputFile(cc *cli.Context, file string, f func(name string, r io.Reader) error) error {
	var in io.Reader
	if file == "-" {
		in = cc.In
	} else {
		fd, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer fd.Close()
		in = fd
	}
	r, err := maybeGunzip(in)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	if err := f(file, r); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// maybeGunzip sniffs the gzip magic bytes and decompresses
// transparently when they are present.
func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		// too short to be gzip, let the decoder report it
		return br, nil
	}
	if magic[0] != 0x1f || magic[1] != 0x8b {
		return br, nil
	}
	return gzip.NewReader(br)
}
