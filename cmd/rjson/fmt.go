package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/parse"
)

func fmtDoc(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	name, err := cfg.inputArg(cc, args)
	if err != nil {
		return err
	}
	var st *parse.Stats
	if cfg.Stats {
		st = &parse.Stats{}
	}
	doc, err := cfg.readDoc(cc, name, st)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(name), err)
	}
	if st != nil {
		printStats(st)
	}
	if cfg.YAML {
		return encode.EncodeYAML(doc, cc.Out)
	}
	f := format.Default()
	if cfg.Format != nil {
		f = *cfg.Format
	}
	return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, f)...)
}
