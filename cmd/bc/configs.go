package main

import (
	"io"
	"os"

	"github.com/signadot/bencode-format/go-bencode/dump"
	"github.com/signadot/bencode-format/go-bencode/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render with color'"`
	Strict bool `cli:"name=strict desc='fail on duplicate dictionary keys'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.WithStrictKeys()}
	}
	return nil
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	var res []dump.DumpOption
	if cfg.Color {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Max int `cli:"name=max desc='max preview bytes for binary strings (0: no limit)'"`

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}
