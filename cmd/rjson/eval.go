package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/eval"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
)

func evalDoc(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing expression", cli.ErrUsage)
	}
	name, err := cfg.inputArg(cc, args[1:])
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc, name, nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(name), err)
	}
	res, err := eval.Eval(args[0], doc)
	if err != nil {
		return err
	}
	return cfg.writeResult(cc, res)
}

func expandDoc(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	name, err := cfg.inputArg(cc, args)
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc, name, nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(name), err)
	}
	if err := eval.Expand(doc, doc.Clone(), eval.DocEnv(doc)); err != nil {
		return err
	}
	return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, format.Of(format.Pretty))...)
}

// writeResult prints containers as documents and scalars as plain text.
func (cfg *MainConfig) writeResult(cc *cli.Context, v *ir.Value) error {
	if v.IsContainer() {
		return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out, format.Of(format.Pretty))...)
	}
	s := "null"
	if !v.IsNull() {
		var err error
		if s, err = v.AsStr(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(cc.Out, s)
	return err
}
