package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/libdiff"
	"github.com/signadot/rjson/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one of the documents may be stdin", cli.ErrUsage)
	}
	from, err := cfg.readDoc(cc, args[0], nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[0]), err)
	}
	to, err := cfg.readDoc(cc, args[1], nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[1]), err)
	}
	d, err := diffDocs(cfg, from, to)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out, format.Of(format.Pretty))...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// diffDocs returns nil when from and to are equal.
func diffDocs(cfg *DiffConfig, from, to *ir.Value) (*ir.Value, error) {
	if !cfg.Merge {
		return libdiff.Diff(from, to), nil
	}
	if ir.Equal(from, to) {
		return nil, nil
	}
	return patch.CreateMerge(from, to, cfg.parseOpts(nil)...)
}
