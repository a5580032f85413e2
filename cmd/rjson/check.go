package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	name, err := cfg.inputArg(cc, args)
	if err != nil {
		return err
	}
	st := &parse.Stats{}
	if _, err := cfg.readDoc(cc, name, st); err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(name), err)
	}
	printStats(st)
	return nil
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}
