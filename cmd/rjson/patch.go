package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
	"github.com/signadot/rjson/patch"
)

func patchDoc(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing patch argument", cli.ErrUsage)
	}
	p, err := cfg.readPatch(cc, args[0])
	if err != nil {
		return err
	}
	name, err := cfg.inputArg(cc, args[1:])
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc, name, nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(name), err)
	}
	var res *ir.Value
	if cfg.Merge {
		res, err = patch.Merge(doc, p, cfg.parseOpts(nil)...)
	} else {
		res, err = patch.Apply(doc, p, cfg.parseOpts(nil)...)
	}
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, format.Of(format.Pretty))...)
}

func (cfg *PatchConfig) readPatch(cc *cli.Context, arg string) (*ir.Value, error) {
	if cfg.String {
		p, err := parse.ParseString(arg, cfg.parseOpts(nil)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding patch: %w", err)
		}
		return p, nil
	}
	if arg == "-" {
		return nil, fmt.Errorf("%w: the patch must be a file or given with -s", cli.ErrUsage)
	}
	p, err := cfg.readDoc(cc, arg, nil)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", arg, err)
	}
	return p, nil
}
