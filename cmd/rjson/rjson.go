package main

import (
	"errors"
	"fmt"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func rjsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: -max-depth must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		return cli.ExitCodeErr(usage(sub, cc, err))
	}
	return err
}

// usage prints the usage of cmd for err and returns the exit code.
var usage = func(cmd *cli.Command, cc *cli.Context, err error) int {
	cmd.Usage(cc, err)
	return cmd.Exit(cc, err)
}
