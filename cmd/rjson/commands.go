package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/parse"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{Strategy: parse.Mmap})
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "d",
			Aliases:     []string{"dup"},
			Description: "duplicate key policy: accept, overwrite, ignore, append or reject",
			Type:        cli.NamedFuncOpt(cfg.dupOpt, "(policy)"),
		},
		{
			Name:        "u",
			Aliases:     []string{"use"},
			Description: "file input: mmap, data, string, stream or seek",
			Type:        cli.NamedFuncOpt(cfg.useOpt, "(method)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "rjson").
		WithSynopsis("rjson [opts] command [opts] [args]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rjsonMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			FmtCommand(cfg),
			SchemaCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			ExpandCommand(cfg))
}

const mainDescription = `rjson parses, checks and rewrites relaxed JSON documents.

Commands reading one document take it from a file argument or, with
-stdin, from standard input. When standard input is a pipe the document
is read from it and a file argument is an error.`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [file]").
		WithDescription("parse a document and print statistics to stderr").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"format"},
		Description: "output format, e.g. compact, pretty:indent=4, xpretty:string-no-quotes",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f", "format").
		WithSynopsis("fmt [-f format] [-yaml] [file]").
		WithDescription("parse a document and write it in the given format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDoc(cfg, cc, args)
		})
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithAliases("s").
		WithSynopsis("schema [file]").
		WithDescription("parse a JSON-Schema document and print its normalized form").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaDoc(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-merge] a b").
		WithDescription("print the structural difference of two documents; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s] [-merge] <patch> [file]").
		WithDescription("apply an RFC 6902 patch, or an RFC 7386 merge patch, to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDoc(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [file]").
		WithDescription("evaluate an expression over a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalDoc(cfg, cc, args)
		})
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "expand").
		WithAliases("x").
		WithSynopsis("expand [file]").
		WithDescription("replace $[expr] references in the strings of a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return expandDoc(cfg, cc, args)
		})
}
