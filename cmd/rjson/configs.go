package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/parse"
)

type MainConfig struct {
	FlexKeys    bool `cli:"name=k desc='allow unquoted object keys'"`
	FlexStrings bool `cli:"name=s desc='allow unquoted string values'"`
	Nocase      bool `cli:"name=n desc='allow case-insensitive true, false and null'"`
	Stdin       bool `cli:"name=stdin desc='read the document from stdin'"`
	Color       bool `cli:"name=color desc='encode with color'"`
	Stats       bool `cli:"name=stats desc='print parse statistics to stderr'"`
	Verbose     bool `cli:"name=v desc='log how input is read'"`
	Gops        bool `cli:"name=gops desc='run a gops diagnostics agent'"`
	MaxDepth    int  `cli:"name=max-depth desc='maximum nesting depth, 0 for none'"`

	Dup      parse.DupKey
	Strategy parse.FileStrategy
	// Trim reads files fully and trims surrounding whitespace.
	Trim bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) dupOpt(_ *cli.Context, a string) (any, error) {
	d, err := parse.ParseDupKey(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Dup = d
	return d, nil
}

// useOpt reads the -u method. string is data plus whitespace trimming.
func (cfg *MainConfig) useOpt(_ *cli.Context, a string) (any, error) {
	cfg.Trim = a == "string"
	if cfg.Trim {
		cfg.Strategy = parse.ReadAll
		return a, nil
	}
	s, err := parse.ParseFileStrategy(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Strategy = s
	return s, nil
}

func (cfg *MainConfig) parseOpts(st *parse.Stats) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseControl(parse.Control{
			AllowFlexibleKeys:    cfg.FlexKeys,
			AllowFlexibleStrings: cfg.FlexStrings,
			AllowNocaseValues:    cfg.Nocase,
			DupKey:               cfg.Dup,
		}),
		parse.MaxDepth(cfg.MaxDepth),
	}
	if st != nil {
		res = append(res, parse.ParseStats(st))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeNewline(true),
	}
	if cfg.Color {
		color.NoColor = false
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(x any) bool {
	f, ok := x.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml desc='write YAML instead of JSON'"`

	Format *format.Format
	Fmt    *cli.Command
}

func (cfg *FmtConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

type SchemaConfig struct {
	*MainConfig

	Schema *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='print an RFC 7386 merge patch instead'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch text rather than a file'"`
	Merge  bool `cli:"name=merge desc='patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}
