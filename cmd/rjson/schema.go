package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/schema"
)

func schemaDoc(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
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
	s, err := schema.FromValue(doc)
	if err != nil {
		return err
	}
	v, err := s.ToValue()
	if err != nil {
		return err
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out, format.Of(format.Pretty))...)
}
